package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMiddlewareApp(t *testing.T, provider auth.IdentityProvider) (*fiber.App, *auth.TokenService) {
	t.Helper()

	tokens := newTestTokenService()
	resolver := auth.NewResolver(tokens, provider, nil)
	mw := auth.NewMiddleware(resolver, auth.DefaultCookieName, "/admin/login", nil)

	app := fiber.New()

	app.Get("/protected", mw.Protected(auth.Active), func(c *fiber.Ctx) error {
		return c.JSON(auth.IdentityFromCtx(c))
	})

	app.Get("/admin", mw.AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/page", mw.WebSession(), func(c *fiber.Ctx) error {
		if identity := auth.IdentityFromCtx(c); identity != nil {
			return c.SendString(identity.Username)
		}
		return c.SendString("anonymous")
	})

	return app, tokens
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(body, &payload))

	return payload["detail"]
}

func TestMiddleware_Protected(t *testing.T) {
	t.Run("valid bearer token reaches the handler", func(t *testing.T) {
		user := &cms.User{ID: 1, Username: "alice", IsActive: true}

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, tokens := newMiddlewareApp(t, provider)

		tokenString, err := tokens.Generate("alice")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenString)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing token answers 401 with challenge", func(t *testing.T) {
		app, _ := newMiddlewareApp(t, &MockIdentityProvider{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
		assert.Equal(t, "Not authenticated", decodeDetail(t, resp))
	})

	t.Run("inactive identity answers 400", func(t *testing.T) {
		user := &cms.User{ID: 2, Username: "bob", IsActive: false}

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "bob").Return(user, nil)

		app, tokens := newMiddlewareApp(t, provider)

		tokenString, err := tokens.Generate("bob")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenString)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Inactive user", decodeDetail(t, resp))
	})

	t.Run("cookie is not accepted on bearer routes", func(t *testing.T) {
		user := &cms.User{ID: 1, Username: "alice", IsActive: true}

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, tokens := newMiddlewareApp(t, provider)

		tokenString, err := tokens.Generate("alice")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: tokenString})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestMiddleware_AdminOnly(t *testing.T) {
	t.Run("superuser cookie session passes", func(t *testing.T) {
		user := &cms.User{ID: 1, Username: "root", IsActive: true, IsSuperuser: true}

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "root").Return(user, nil)

		app, tokens := newMiddlewareApp(t, provider)

		tokenString, err := tokens.Generate("root")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: tokenString})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing cookie redirects to login", func(t *testing.T) {
		app, _ := newMiddlewareApp(t, &MockIdentityProvider{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/login", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("regular user redirects to login", func(t *testing.T) {
		user := &cms.User{ID: 2, Username: "alice", IsActive: true}

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, tokens := newMiddlewareApp(t, provider)

		tokenString, err := tokens.Generate("alice")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: tokenString})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/login", resp.Header.Get(fiber.HeaderLocation))
	})
}

func TestMiddleware_WebSession(t *testing.T) {
	t.Run("valid cookie attaches the identity", func(t *testing.T) {
		user := &cms.User{ID: 1, Username: "alice", IsActive: true}

		provider := &MockIdentityProvider{}
		provider.On("FindIdentityByUsername", mock.Anything, "alice").Return(user, nil)

		app, tokens := newMiddlewareApp(t, provider)

		tokenString, err := tokens.Generate("alice")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/page", nil)
		req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: tokenString})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.Equal(t, "alice", string(body))
	})

	t.Run("anonymous requests still render", func(t *testing.T) {
		app, _ := newMiddlewareApp(t, &MockIdentityProvider{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/page", nil))
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.Equal(t, "anonymous", string(body))
	})

	t.Run("stale cookie degrades to anonymous", func(t *testing.T) {
		app, tokens := newMiddlewareApp(t, &MockIdentityProvider{})

		tokenString, err := tokens.Generate("alice", -time.Minute)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/page", nil)
		req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: tokenString})

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.Equal(t, "anonymous", string(body))
	})
}
