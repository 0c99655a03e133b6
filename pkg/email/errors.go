package email

import "errors"

var (
	ErrSendFailed    = errors.New("email.send_failed")
	ErrInvalidConfig = errors.New("email.invalid_config")
)
