package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("auth.email_taken")
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
	ErrUserNotFound       = errors.New("auth.user_not_found")
	ErrTokenInvalid       = errors.New("auth.verification_token_invalid")
	ErrTokenExpired       = errors.New("auth.verification_token_expired")
	ErrAlreadyVerified    = errors.New("auth.already_verified")
)
