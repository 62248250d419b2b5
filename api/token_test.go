package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/api"
	"github.com/goliatone/go-cms/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider implements auth.IdentityProvider for testing
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) FindIdentityByUsername(ctx context.Context, username string) (*cms.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*cms.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

type tokenConfig struct{}

func (tokenConfig) GetSigningKey() string             { return "test-signing-key" }
func (tokenConfig) GetSigningMethod() string          { return "HS256" }
func (tokenConfig) GetTokenExpiration() time.Duration { return 30 * time.Minute }
func (tokenConfig) GetCookieName() string             { return auth.DefaultCookieName }

func newTokenApp(t *testing.T, provider auth.IdentityProvider) (*fiber.App, *auth.TokenService) {
	t.Helper()

	tokens, err := auth.NewTokenService(tokenConfig{}, nil)
	assert.NoError(t, err)

	authenticator := auth.NewAuthenticator(provider, tokens)
	resolver := auth.NewResolver(tokens, provider, nil)
	mw := auth.NewMiddleware(resolver, auth.DefaultCookieName, "/admin/login", nil)

	app := fiber.New()
	api.Register(app.Group("/api"), &api.Controller{
		Auth:       authenticator,
		Middleware: mw,
	})

	return app, tokens
}

func seedIdentity(t *testing.T, password string, active bool) *cms.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)

	return &cms.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		IsActive:     active,
	}
}

func postToken(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/api/token", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	assert.NoError(t, err)

	return resp
}

func TestToken(t *testing.T) {
	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		user := seedIdentity(t, "secret", true)

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, tokens := newTokenApp(t, provider)

		resp := postToken(t, app, "alice", "secret")
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var payload api.TokenResponse
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "bearer", payload.TokenType)

		claims, err := tokens.Validate(payload.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "alice", claims.Username())
	})

	t.Run("wrong password answers 401 without detail leakage", func(t *testing.T) {
		user := seedIdentity(t, "secret", true)

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, _ := newTokenApp(t, provider)

		resp := postToken(t, app, "alice", "wrong")
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var payload map[string]string
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "Incorrect username or password", payload["detail"])
	})

	t.Run("unknown username answers the same 401", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "ghost").Return(nil, auth.ErrIdentityNotFound)

		app, _ := newTokenApp(t, provider)

		resp := postToken(t, app, "ghost", "secret")
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var payload map[string]string
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "Incorrect username or password", payload["detail"])
	})

	t.Run("inactive user answers 400", func(t *testing.T) {
		user := seedIdentity(t, "secret", false)

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, _ := newTokenApp(t, provider)

		resp := postToken(t, app, "alice", "secret")
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var payload map[string]string
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "Inactive user", payload["detail"])
	})
}

func TestMe(t *testing.T) {
	t.Run("returns the identity behind the token", func(t *testing.T) {
		user := seedIdentity(t, "secret", true)

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, tokens := newTokenApp(t, provider)

		tokenString, err := tokens.Generate("alice")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenString)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)

		var payload cms.User
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "alice", payload.Username)
		assert.Empty(t, payload.PasswordHash)
	})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		app, _ := newTokenApp(t, &MockIdentityProvider{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
