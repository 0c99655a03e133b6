package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when none is requested or the
// requested one is unavailable.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether missing translations return the key
// itself (default true) or an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger sets the translator's logger. Missing-translation warnings are
// only emitted when WithMissingLogging is also enabled.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingLogging enables warnings for missing translations.
func WithMissingLogging(enabled bool) Option {
	return func(t *Translator) { t.logMissing = enabled }
}
