package binder

import "errors"

var (
	// ErrNotApplicable signals that a binder does not apply to the request
	// (wrong method or media type) and the next binder should run instead.
	ErrNotApplicable = errors.New("binder.not_applicable")

	ErrUnsupportedMediaType = errors.New("binder.unsupported_media_type")
	ErrInvalidForm          = errors.New("binder.invalid_form_data")
	ErrInvalidQuery         = errors.New("binder.invalid_query")
)
