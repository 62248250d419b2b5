package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
)

// DefaultCookieName is the session cookie used by browser routes.
const DefaultCookieName = "access_token"

// SessionExtractor pulls a raw token from a request transport. Absence of
// a token is reported as ErrTokenMissing, never as a panic; public pages
// must keep working for anonymous requests.
type SessionExtractor interface {
	Extract(c *fiber.Ctx) (string, error)
}

// BearerExtractor reads the token from an "Authorization: Bearer <token>"
// style header. Used for the JSON API routes.
type BearerExtractor struct {
	Header string
	Scheme string
}

func (e BearerExtractor) Extract(c *fiber.Ctx) (string, error) {
	header := e.Header
	if header == "" {
		header = fiber.HeaderAuthorization
	}
	scheme := e.Scheme
	if scheme == "" {
		scheme = "Bearer"
	}

	value := c.Get(header)
	if value == "" {
		return "", ErrTokenMissing
	}

	if len(value) <= len(scheme)+1 || !strings.EqualFold(value[:len(scheme)], scheme) {
		return "", ErrTokenMissing
	}

	return strings.TrimSpace(value[len(scheme):]), nil
}

// CookieExtractor reads the token from a named cookie. Used for the
// browser and admin routes.
type CookieExtractor struct {
	Name string
}

func (e CookieExtractor) Extract(c *fiber.Ctx) (string, error) {
	name := e.Name
	if name == "" {
		name = DefaultCookieName
	}

	token := c.Cookies(name)
	if token == "" {
		return "", ErrTokenMissing
	}

	return token, nil
}

// Resolver turns a presented token into a stored identity. Both transport
// strategies share the one verifier; only the extraction differs.
type Resolver struct {
	tokens   *TokenService
	provider IdentityProvider
	logger   cms.Logger
}

// NewResolver returns a Resolver backed by the given verifier and store.
func NewResolver(tokens *TokenService, provider IdentityProvider, logger cms.Logger) *Resolver {
	if logger == nil {
		logger = cms.DefLogger{}
	}
	return &Resolver{tokens: tokens, provider: provider, logger: logger}
}

// Resolve extracts a token with the given strategy, validates it and looks
// up the subject. A token whose subject no longer exists resolves to
// ErrIdentityNotFound, which callers treat exactly like an invalid token.
func (r *Resolver) Resolve(ctx context.Context, c *fiber.Ctx, extractor SessionExtractor) (*cms.User, error) {
	raw, err := extractor.Extract(c)
	if err != nil {
		return nil, err
	}

	claims, err := r.tokens.Validate(raw)
	if err != nil {
		r.logger.Debug("session token rejected: %v", err)
		return nil, err
	}

	user, err := r.provider.FindIdentityByUsername(ctx, claims.Username())
	if err != nil {
		r.logger.Debug("session subject %q not resolvable: %v", claims.Username(), err)
		return nil, ErrIdentityNotFound
	}

	return user, nil
}
