// Package sanitizer normalizes free-text user input before it reaches
// validation and storage.
package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Apply runs transforms over value left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Trim removes surrounding whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims and lowercases, the usual email normalization.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseWhitespace folds runs of whitespace into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars drops non-printable runes, keeping newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes anything that looks like a markup tag. Output is
// plain text, not safe HTML; escaping still happens at render time.
func StripHTML(s string) string {
	return htmlTagRe.ReplaceAllString(s, "")
}

// MaxLength truncates to at most n runes.
func MaxLength(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// SingleLine flattens all line breaks and collapses the result.
func SingleLine(s string) string {
	return CollapseWhitespace(strings.NewReplacer("\r", " ", "\n", " ").Replace(s))
}
