package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Form binds application/x-www-form-urlencoded bodies to `form:` tagged
// fields. Requests without a body (GET, HEAD) or with a different media type
// report ErrNotApplicable so the binder chain can continue.
//
//	type CreateReservationRequest struct {
//		Date      string `form:"date"`
//		TimeSlot  string `form:"time_slot"`
//		PartySize int    `form:"party_size"`
//		Note      string `form:"note"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrNotApplicable
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindValues(v, "form", r.PostForm, ErrInvalidForm)
	}
}
