// Package webhooksig verifies HMAC signatures that payment providers attach
// to webhook deliveries.
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"strings"
)

var (
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMissingSecret    = errors.New("webhook secret is not configured")
)

type Algorithm func() hash.Hash

var (
	SHA256 Algorithm = sha256.New
	SHA512 Algorithm = sha512.New
)

// Sign returns the lowercase hex HMAC of body.
func Sign(alg Algorithm, secret, body []byte) string {
	mac := hmac.New(alg, secret)
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func Verify(alg Algorithm, secret, body []byte, signature string) error {
	if len(secret) == 0 {
		return ErrMissingSecret
	}
	signature = strings.ToLower(strings.TrimSpace(signature))
	if signature == "" {
		return ErrMissingSignature
	}
	expected := Sign(alg, secret, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
