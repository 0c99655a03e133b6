package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// SplitLocale splits a request path into its locale prefix and the rest.
// "/es/reservas" with supported [en es] yields ("es", "/reservas", true);
// the rest is always rooted. Paths without a valid prefix return ok=false
// with the path untouched.
func SplitLocale(path string, supported []string) (locale, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, remainder, _ := strings.Cut(trimmed, "/")
	if seg == "" {
		return "", path, false
	}

	seg = strings.ToLower(seg)
	for _, lang := range supported {
		if seg == strings.ToLower(lang) {
			if remainder == "" {
				return seg, "/", true
			}
			return seg, "/" + remainder, true
		}
	}
	return "", path, false
}

// Negotiate picks the best supported locale for an Accept-Language header.
// Returns fallback for empty headers or when nothing matches well enough.
func Negotiate(acceptLanguage string, supported []string, fallback string) string {
	if acceptLanguage == "" || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(wanted...)
	if conf == language.No {
		return fallback
	}
	return codes[idx]
}
