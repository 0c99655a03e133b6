package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultLanguage is used when no locale can be determined.
const DefaultLanguage = "en"

// Translator serves translations loaded through an adapter. Lookups use
// dot-separated keys over a nested catalog; missing entries fall back to the
// key itself unless configured otherwise.
type Translator struct {
	catalog       map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
	adapter       Adapter
}

// NewTranslator loads the catalog from the adapter and returns a ready
// Translator.
func NewTranslator(ctx context.Context, adapter Adapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("i18n: adapter is nil")
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}
	for _, opt := range opts {
		opt(t)
	}

	catalog, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, entries := range catalog {
		if lang == "" {
			return nil, fmt.Errorf("i18n: empty language code in catalog")
		}
		if entries == nil {
			return nil, fmt.Errorf("i18n: nil catalog for language %q", lang)
		}
	}

	t.catalog = catalog
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// DefaultLang returns the configured default language.
func (t *Translator) DefaultLang() string {
	return t.defaultLang
}

// SupportedLanguages lists languages with catalog entries, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.catalog))
	for lang := range t.catalog {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether lang has an entry for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries, ok := t.catalog[lang]
	if !ok {
		return false
	}
	_, ok = lookup(entries, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from the
// trailing key-value argument pairs.
//
//	t.T("es", "reservations.confirmed", "date", "2026-09-12")
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries, ok := t.catalog[lang]
	if !ok {
		return t.miss(lang, key, args)
	}

	val, ok := lookup(entries, key)
	if !ok {
		return t.miss(lang, key, args)
	}

	s, ok := val.(string)
	if !ok {
		return t.miss(lang, key, args)
	}
	return substitute(s, pairsToMap(args))
}

// N translates key with plural selection. It looks up key+".zero" (n=0 only),
// key+".one" (n=1), then key+".other". The count is always available to the
// template as %{count}.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries, ok := t.catalog[lang]
	if !ok {
		return t.miss(lang, key, args)
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{key + ".zero", key + ".other"}
	case 1:
		forms = []string{key + ".one"}
	default:
		forms = []string{key + ".other"}
	}

	for _, form := range forms {
		if val, ok := lookup(entries, form); ok {
			if s, ok := val.(string); ok {
				params := pairsToMap(args)
				if _, ok := params["count"]; !ok {
					params["count"] = strconv.Itoa(n)
				}
				return substitute(s, params)
			}
		}
	}

	return t.miss(lang, key, args)
}

func (t *Translator) miss(lang, key string, args []string) string {
	if t.logMissing {
		t.logger.Warn("missing translation", "lang", lang, "key", key)
	}
	if t.fallbackToKey {
		return substitute(key, pairsToMap(args))
	}
	return ""
}

// lookup traverses the nested catalog with a dot-separated key:
// "home.specials.title" walks m["home"]["specials"]["title"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders, leaving unknown ones intact.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func pairsToMap(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
