package i18n

import (
	"encoding/json"
	"sort"
	"strings"
)

// Localized resolves a locale-specific string from the heterogeneous shapes
// stored content can take: a plain string, a JSON-encoded object keyed by
// locale, or an already-decoded map. Resolution order: requested locale,
// fallback locale, then the lexicographically first non-empty value so the
// result is deterministic. Unresolvable values yield "".
func Localized(value any, locale, fallback string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if m, ok := decodeLocaleMap(v); ok {
			return pick(m, locale, fallback)
		}
		return v
	case []byte:
		if m, ok := decodeLocaleMap(string(v)); ok {
			return pick(m, locale, fallback)
		}
		return string(v)
	case map[string]string:
		return pick(v, locale, fallback)
	case map[string]any:
		m := make(map[string]string, len(v))
		for k, val := range v {
			if s, ok := val.(string); ok {
				m[k] = s
			}
		}
		return pick(m, locale, fallback)
	default:
		return ""
	}
}

// decodeLocaleMap detects and parses a JSON-encoded locale map. Anything
// that is not a JSON object of strings is treated as a plain value.
func decodeLocaleMap(s string) (map[string]string, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var m map[string]string
	if err := json.Unmarshal([]byte(trimmed), &m); err != nil {
		return nil, false
	}
	return m, true
}

func pick(m map[string]string, locale, fallback string) string {
	if s := m[locale]; s != "" {
		return s
	}
	if s := m[fallback]; s != "" {
		return s
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		if m[k] != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return m[keys[0]]
}
