package cms_test

import (
	"testing"
	"time"

	cms "github.com/goliatone/go-cms"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := cms.LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, ":8000", cfg.Address)
		assert.Equal(t, "access_token", cfg.GetCookieName())
		assert.Equal(t, "HS256", cfg.GetSigningMethod())
		assert.Equal(t, 30*time.Minute, cfg.GetTokenExpiration())
		assert.Equal(t, "admin", cfg.AdminUsername)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CMS_ADDRESS", ":9999")
		t.Setenv("CMS_TOKEN_EXPIRATION_MINUTES", "60")
		t.Setenv("CMS_SESSION_COOKIE", "session")

		cfg, err := cms.LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Address)
		assert.Equal(t, time.Hour, cfg.GetTokenExpiration())
		assert.Equal(t, "session", cfg.GetCookieName())
	})

	t.Run("blank signing key is a startup error", func(t *testing.T) {
		t.Setenv("CMS_JWT_SIGNING_KEY", "")

		_, err := cms.LoadConfig()

		assert.ErrorIs(t, err, cms.ErrMissingSigningKey)
	})
}
