package freedompay

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// SecretDecrypter recovers merchant terminal secrets stored as base64 RSA PKCS#1 v1.5 ciphertext.
type SecretDecrypter struct {
	key *rsa.PrivateKey
}

func NewSecretDecrypter(key *rsa.PrivateKey) *SecretDecrypter {
	return &SecretDecrypter{key: key}
}

func LoadSecretDecrypter(pemPath string) (*SecretDecrypter, error) {
	raw, err := os.ReadFile(pemPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	key, err := ParsePrivateKey(raw)
	if err != nil {
		return nil, err
	}
	return NewSecretDecrypter(key), nil
}

// ParsePrivateKey accepts PKCS#1 and PKCS#8 PEM blocks.
func ParsePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("private key: no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key: not an RSA key")
	}
	return key, nil
}

func (d *SecretDecrypter) Decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", errors.New("encrypted secret is empty")
	}
	cipherText, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("decode secret: %w", err)
	}
	plain, err := rsa.DecryptPKCS1v15(nil, d.key, cipherText)
	if err != nil {
		return "", fmt.Errorf("decrypt secret: %w", err)
	}
	return string(plain), nil
}
