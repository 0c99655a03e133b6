package redis

import "errors"

var (
	ErrParseURL          = errors.New("redis.parse_url_failed")
	ErrNotReady          = errors.New("redis.not_ready")
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
)
