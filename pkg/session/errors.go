package session

import "errors"

var (
	ErrInvalidSession  = errors.New("session.invalid")
	ErrExpired         = errors.New("session.expired")
	ErrNotFound        = errors.New("session.not_found")
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
