// Package token creates compact signed tokens carrying a JSON payload,
// suitable for email verification links and similar short-lived flows.
//
// Format: base64url(payload).base64url(signature), where the signature is the
// first 8 bytes of HMAC-SHA256 over the raw payload. The truncated signature
// keeps links short; it is not meant for long-lived or high-value tokens.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidToken     = errors.New("token.invalid_format")
	ErrSignatureInvalid = errors.New("token.signature_mismatch")
)

const signatureLength = 8

// Generate encodes the payload as JSON and appends a truncated HMAC-SHA256
// signature derived from secret.
func Generate[T any](payload T, secret string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	sig := sign(data, secret)
	return base64.RawURLEncoding.EncodeToString(data) + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Parse verifies the signature and decodes the payload into T.
func Parse[T any](tok, secret string) (T, error) {
	var payload T

	parts := strings.Split(tok, ".")
	if len(parts) != 2 {
		return payload, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, ErrInvalidToken
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return payload, ErrInvalidToken
	}

	if subtle.ConstantTimeCompare(sig, sign(data, secret)) != 1 {
		return payload, ErrSignatureInvalid
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, ErrInvalidToken
	}
	return payload, nil
}

func sign(data []byte, secret string) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return h.Sum(nil)[:signatureLength]
}
