package auth

import "time"

type Config struct {
	// TokenSecret signs email verification tokens.
	TokenSecret string `env:"AUTH_TOKEN_SECRET,required"`

	// VerificationTTL bounds how long a verification link stays valid.
	VerificationTTL time.Duration `env:"AUTH_VERIFICATION_TTL" envDefault:"24h"`

	// BaseURL is the public origin used in email links.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// BcryptCost tunes password hashing; the bcrypt default suits
	// production, tests lower it for speed.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}
