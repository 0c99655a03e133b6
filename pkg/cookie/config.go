package cookie

import (
	"net/http"
	"strings"
)

// Config holds cookie manager settings loaded from the environment.
// Secrets is a comma-separated list; the first entry signs and encrypts new
// cookies, the rest remain valid for reads during rotation.
type Config struct {
	Secrets  string `env:"COOKIE_SECRETS,required"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite int    `env:"COOKIE_SAME_SITE" envDefault:"2"` // http.SameSiteLaxMode
}

// NewFromConfig builds a Manager from Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := []Option{
		WithSameSite(http.SameSite(cfg.SameSite)),
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.secretList(), configOpts...)
}

func (c Config) secretList() []string {
	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}
