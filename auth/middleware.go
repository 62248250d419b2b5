package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
)

// ContextKey is the fiber locals key holding the resolved identity.
const ContextKey = "identity"

// IdentityFromCtx returns the identity resolved by the middleware, or nil
// for anonymous requests.
func IdentityFromCtx(c *fiber.Ctx) *cms.User {
	identity, _ := c.Locals(ContextKey).(*cms.User)
	return identity
}

// Middleware wires the session resolver into fiber routes. API routes use
// the bearer strategy and answer 401/403; admin routes use the cookie
// strategy and redirect to the login view.
type Middleware struct {
	resolver *Resolver
	bearer   BearerExtractor
	cookie   CookieExtractor
	loginURL string
	logger   cms.Logger
}

// NewMiddleware returns a Middleware using the given resolver. cookieName
// names the session cookie; loginURL is where rejected browser requests
// are sent.
func NewMiddleware(resolver *Resolver, cookieName, loginURL string, logger cms.Logger) *Middleware {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if loginURL == "" {
		loginURL = "/admin/login"
	}
	if logger == nil {
		logger = cms.DefLogger{}
	}

	return &Middleware{
		resolver: resolver,
		bearer:   BearerExtractor{},
		cookie:   CookieExtractor{Name: cookieName},
		loginURL: loginURL,
		logger:   logger,
	}
}

// Protected guards a JSON API route. The request must carry a valid
// bearer token and the resolved identity must pass every guard, in order.
func (m *Middleware) Protected(guards ...Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := m.resolver.Resolve(c.Context(), c, m.bearer)
		if err != nil {
			m.logger.Debug("api auth rejected: %v", err)
			return unauthenticated(c)
		}

		if err := CheckAll(identity, guards...); err != nil {
			return RespondGuardError(c, err)
		}

		c.Locals(ContextKey, identity)
		return c.Next()
	}
}

// WebSession resolves the cookie session when present and continues
// anonymously otherwise. It never fails the request; public pages must
// tolerate missing or stale cookies.
func (m *Middleware) WebSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := m.resolver.Resolve(c.Context(), c, m.cookie)
		if err == nil {
			c.Locals(ContextKey, identity)
		}
		return c.Next()
	}
}

// AdminOnly guards a server-rendered admin route. The cookie session must
// resolve to an active superuser, else the browser is sent to the login view.
func (m *Middleware) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := m.resolver.Resolve(c.Context(), c, m.cookie)
		if err != nil {
			return c.Redirect(m.loginURL, fiber.StatusSeeOther)
		}

		if err := CheckAll(identity, Authenticated, Active, Administrator); err != nil {
			m.logger.Info("admin route rejected %q: %v", identity.Username, err)
			return c.Redirect(m.loginURL, fiber.StatusSeeOther)
		}

		c.Locals(ContextKey, identity)
		return c.Next()
	}
}

// RespondGuardError maps a guard failure to the JSON API status taxonomy:
// 401 for unauthenticated, 400 for inactive accounts, 403 for everything
// the identity may not do.
func RespondGuardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return unauthenticated(c)
	case errors.Is(err, ErrIdentityInactive):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Inactive user"})
	case errors.Is(err, ErrSelfAction):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"detail": err.Error()})
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"detail": "Not enough permissions"})
	}
}

func unauthenticated(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Not authenticated"})
}
