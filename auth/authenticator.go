package auth

import (
	"context"
	"time"

	cms "github.com/goliatone/go-cms"
)

// IdentityProvider ensures we have a store to retrieve auth identities.
// Lookup by username returns at most one record; uniqueness is enforced
// by the store.
type IdentityProvider interface {
	FindIdentityByUsername(ctx context.Context, username string) (*cms.User, error)
}

// Authenticator verifies credentials and mints tokens for identities.
type Authenticator struct {
	provider IdentityProvider
	tokens   *TokenService
	logger   cms.Logger
}

// NewAuthenticator returns a new Authenticator.
func NewAuthenticator(provider IdentityProvider, tokens *TokenService) *Authenticator {
	return &Authenticator{
		provider: provider,
		tokens:   tokens,
		logger:   cms.DefLogger{},
	}
}

// WithLogger replaces the default logger.
func (a *Authenticator) WithLogger(logger cms.Logger) *Authenticator {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// TokenService returns the TokenService used by this Authenticator.
func (a *Authenticator) TokenService() *TokenService {
	return a.tokens
}

// Authenticate resolves the username and checks the password. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials.
// Inactive accounts are reported distinctly; that is not a credential
// problem.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*cms.User, error) {
	user, err := a.provider.FindIdentityByUsername(ctx, username)
	if err != nil {
		a.logger.Info("authenticate lookup failed for %q: %v", username, err)
		return nil, ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		a.logger.Info("authenticate password mismatch for %q", username)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		a.logger.Warn("authenticate blocked inactive user %q", username)
		return nil, ErrIdentityInactive
	}

	return user, nil
}

// Login authenticates and returns a signed token for the identity. The
// optional lifetime overrides the configured default.
func (a *Authenticator) Login(ctx context.Context, username, password string, lifetime ...time.Duration) (string, error) {
	user, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	return a.tokens.Generate(user.Username, lifetime...)
}
