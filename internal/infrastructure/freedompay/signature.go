package freedompay

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Param is one request field. Value is a scalar, a nested Params or a []any list.
type Param struct {
	Key   string
	Value any
}

// Params keeps request fields in insertion order; the order drives the index suffixes of the flat keys.
type Params []Param

func (p Params) Set(key string, value any) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Sign returns the MD5 request signature: values of the flattened parameters ordered by flat key,
// prefixed by the script name and suffixed by the merchant secret, joined with ';'.
func Sign(scriptName string, params Params, secret string) string {
	flat := flatten(params, "")
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys)+2)
	if scriptName != "" {
		values = append(values, scriptName)
	}
	for _, k := range keys {
		values = append(values, flat[k])
	}
	if secret != "" {
		values = append(values, secret)
	}

	sum := md5.Sum([]byte(strings.Join(values, ";")))
	return hex.EncodeToString(sum[:])
}

func flatten(params Params, parent string) map[string]string {
	out := make(map[string]string)
	for i, param := range params {
		key := fmt.Sprintf("%s%s%03d", parent, param.Key, i+1)
		switch v := param.Value.(type) {
		case nil:
		case Params:
			for k, val := range flatten(v, key) {
				out[k] = val
			}
		case []any:
			for j, item := range v {
				itemKey := fmt.Sprintf("%s%03d", key, j+1)
				switch item.(type) {
				case Params, []any:
					for k, val := range flatten(Params{{Key: itemKey, Value: item}}, "") {
						out[k] = val
					}
				case nil:
					out[itemKey] = ""
				default:
					out[itemKey] = fmt.Sprint(item)
				}
			}
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return out
}
