package handler

import (
	"fmt"

	"github.com/casaluz/website/pkg/validator"
)

// FieldMessage is one failed rule for a form field. Text is the rendered
// fallback; Key and Values let a view translate the message for the
// request locale instead.
type FieldMessage struct {
	Text   string
	Key    string
	Values map[string]string
}

// FormResult is the uniform outcome of a form submission handed to view
// components: a success/error discriminator, a summary message, and
// per-field error message lists. Values carries the submitted inputs so a
// failed form re-renders with what the user typed.
type FormResult struct {
	Success bool
	Message string
	Fields  map[string][]FieldMessage
	Values  map[string]string
}

// FormSuccess builds a successful result.
func FormSuccess(message string) FormResult {
	return FormResult{Success: true, Message: message}
}

// FormError builds a failed result without field detail.
func FormError(message string) FormResult {
	return FormResult{Success: false, Message: message}
}

// FormFromValidation converts validator errors into a FormResult. The ok
// return is false when err carries no validation detail, in which case the
// caller should treat it as an internal failure instead of a form outcome.
func FormFromValidation(err error, message string) (FormResult, bool) {
	ve := validator.Extract(err)
	if ve == nil {
		return FormResult{}, false
	}

	fields := make(map[string][]FieldMessage, len(ve.Fields()))
	for _, e := range ve {
		var values map[string]string
		if len(e.TranslationValues) > 0 {
			values = make(map[string]string, len(e.TranslationValues))
			for k, val := range e.TranslationValues {
				values[k] = fmt.Sprint(val)
			}
		}
		fields[e.Field] = append(fields[e.Field], FieldMessage{
			Text:   e.Message,
			Key:    e.TranslationKey,
			Values: values,
		})
	}

	return FormResult{
		Success: false,
		Message: message,
		Fields:  fields,
	}, true
}

// WithValues attaches the submitted form values for re-rendering.
func (f FormResult) WithValues(values map[string]string) FormResult {
	f.Values = values
	return f
}

// HasFieldError reports whether a specific field failed.
func (f FormResult) HasFieldError(field string) bool {
	return len(f.Fields[field]) > 0
}

// FieldError returns the first message text for a field, or "".
func (f FormResult) FieldError(field string) string {
	if msgs := f.Fields[field]; len(msgs) > 0 {
		return msgs[0].Text
	}
	return ""
}

// Value returns a previously submitted value, or "".
func (f FormResult) Value(field string) string {
	return f.Values[field]
}
