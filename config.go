package cms

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process wide options. It is loaded once at startup and
// never mutated afterwards; components receive it by value.
type Config struct {
	Address      string `env:"CMS_ADDRESS" envDefault:":8000"`
	DatabaseDSN  string `env:"CMS_DATABASE_DSN" envDefault:"file:db.sqlite3?cache=shared"`
	TemplatesDir string `env:"CMS_TEMPLATES_DIR" envDefault:"./templates"`
	UploadDir    string `env:"CMS_UPLOAD_DIR" envDefault:"./upload"`
	StaticDir    string `env:"CMS_STATIC_DIR" envDefault:"./static"`

	SigningKey      string `env:"CMS_JWT_SIGNING_KEY" envDefault:"jwt-secret-key-change-in-production"`
	SigningMethod   string `env:"CMS_JWT_SIGNING_METHOD" envDefault:"HS256"`
	TokenExpiration int    `env:"CMS_TOKEN_EXPIRATION_MINUTES" envDefault:"30"`
	CookieName      string `env:"CMS_SESSION_COOKIE" envDefault:"access_token"`

	AdminUsername string `env:"CMS_ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"CMS_ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"CMS_ADMIN_PASSWORD" envDefault:"admin"`

	Debug bool `env:"CMS_DEBUG" envDefault:"false"`
}

// ErrMissingSigningKey means the process cannot mint or verify tokens.
var ErrMissingSigningKey = errors.New("config: signing key is required")

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}

	if cfg.SigningKey == "" {
		return cfg, ErrMissingSigningKey
	}

	return cfg, nil
}

// GetSigningKey returns the server held token signing secret.
func (c Config) GetSigningKey() string {
	return c.SigningKey
}

// GetSigningMethod returns the JWT signing algorithm name.
func (c Config) GetSigningMethod() string {
	return c.SigningMethod
}

// GetTokenExpiration returns the default token lifetime.
func (c Config) GetTokenExpiration() time.Duration {
	return time.Duration(c.TokenExpiration) * time.Minute
}

// GetCookieName returns the name of the session cookie used by browser routes.
func (c Config) GetCookieName() string {
	return c.CookieName
}
