package cookie

import "errors"

// Configuration errors, returned by New.
var (
	ErrNoSecret       = errors.New("cookie.no_secret")
	ErrSecretTooShort = errors.New("cookie.secret_too_short")
)

// Read errors. A missing cookie is the only one callers normally branch
// on; the rest all mean the value cannot be trusted.
var (
	ErrCookieNotFound   = errors.New("cookie.not_found")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
)
