package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/stretchr/testify/assert"
)

func TestNewTokenService(t *testing.T) {
	t.Run("creates token service", func(t *testing.T) {
		service, err := auth.NewTokenService(defaultTestConfig(), nil)

		assert.NoError(t, err)
		assert.NotNil(t, service)
		assert.Equal(t, 30*time.Minute, service.Expiration())
	})

	t.Run("rejects empty signing key", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.key = ""

		service, err := auth.NewTokenService(cfg, nil)

		assert.Nil(t, service)
		assert.ErrorIs(t, err, cms.ErrMissingSigningKey)
	})

	t.Run("rejects non HMAC signing method", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.method = "RS256"

		service, err := auth.NewTokenService(cfg, nil)

		assert.Nil(t, service)
		assert.Error(t, err)
	})

	t.Run("falls back to default expiration", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.expiration = 0

		service, err := auth.NewTokenService(cfg, nil)

		assert.NoError(t, err)
		assert.Equal(t, 30*time.Minute, service.Expiration())
	})
}

func TestTokenService_Generate(t *testing.T) {
	service := newTestTokenService()

	t.Run("generates valid token for subject", func(t *testing.T) {
		tokenString, err := service.Generate("alice")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		claims, err := service.Validate(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, "alice", claims.Username())
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.Expires(), 5*time.Second)
	})

	t.Run("honors lifetime override", func(t *testing.T) {
		tokenString, err := service.Generate("alice", time.Hour)

		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expires(), 5*time.Second)
	})
}

func TestTokenService_Validate(t *testing.T) {
	service := newTestTokenService()

	t.Run("rejects expired token", func(t *testing.T) {
		tokenString, err := service.Generate("alice", -time.Minute)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Nil(t, claims)
		assert.True(t, auth.IsTokenExpiredError(err))
	})

	t.Run("rejects token signed with a different key", func(t *testing.T) {
		cfg := defaultTestConfig()
		cfg.key = "a-different-signing-key"
		other, err := auth.NewTokenService(cfg, nil)
		assert.NoError(t, err)

		tokenString, err := other.Generate("alice")
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenSignatureInvalid)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		claims, err := service.Validate("not-a-token")

		assert.Nil(t, claims)
		assert.True(t, auth.IsMalformedError(err))
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		tokenString, err := service.Generate("alice")
		assert.NoError(t, err)

		tampered := tokenString[:len(tokenString)-4] + "AAAA"

		claims, err := service.Validate(tampered)

		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("rejects token signed with none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
		})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}
