package freedompay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten_NestedListsAndNils(t *testing.T) {
	params := Params{
		{Key: "a", Value: "1"},
		{Key: "b", Value: nil},
		{Key: "c", Value: Params{
			{Key: "x", Value: "2"},
			{Key: "y", Value: []any{"p", nil, Params{{Key: "z", Value: "3"}}}},
		}},
	}

	flat := flatten(params, "")

	assert.Equal(t, map[string]string{
		"a001":               "1",
		"c003x001":           "2",
		"c003y002001":        "p",
		"c003y002002":        "",
		"c003y002003001z001": "3",
	}, flat)
	assert.Equal(t, "b4084d0c83f46afc98053be7f55fda77", Sign("", params, "k"))
}

func TestSign_InitPaymentVector(t *testing.T) {
	params := Params{
		{Key: "pg_order_id", Value: "ord-1"},
		{Key: "pg_merchant_id", Value: "550"},
		{Key: "pg_amount", Value: "5000"},
		{Key: "pg_description", Value: "Заказ № ord-1"},
		{Key: "pg_salt", Value: "AbCd1234"},
		{Key: "pg_testing_mode", Value: 1},
	}

	assert.Equal(t, "b9c3e3a72c31eed61aec6e4ea5f9959e", Sign("init_payment.php", params, "s3cret"))
}

func TestParams_SetReplacesInPlace(t *testing.T) {
	params := Params{{Key: "a", Value: 1}, {Key: "b", Value: 2}}

	params = params.Set("a", 3).Set("c", 4)

	assert.Equal(t, Params{{Key: "a", Value: 3}, {Key: "b", Value: 2}, {Key: "c", Value: 4}}, params)
	v, ok := params.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}
