package validator

import (
	"fmt"
	"time"
)

// FutureDate validates that a time is strictly after now.
func FutureDate(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool { return value.After(time.Now()) },
		Error: ValidationError{
			Field:             field,
			Message:           "must be a future date",
			TranslationKey:    "validation.future_date",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// DateBefore validates that value falls before the given bound.
func DateBefore(field string, value, before time.Time) Rule {
	return Rule{
		Check: func() bool { return value.Before(before) },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be before %s", before.Format("2006-01-02")),
			TranslationKey:    "validation.date_before",
			TranslationValues: map[string]any{"field": field, "before": before.Format("2006-01-02")},
		},
	}
}
