package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	cms "github.com/goliatone/go-cms"
)

// Config holds the token options consumed by the service. Loaded once at
// startup; never re-read per request.
type Config interface {
	GetSigningKey() string
	GetSigningMethod() string
	GetTokenExpiration() time.Duration
	GetCookieName() string
}

// TokenService mints and validates signed identity assertions.
type TokenService struct {
	signingKey []byte
	method     jwt.SigningMethod
	expiration time.Duration
	logger     cms.Logger
}

// NewTokenService creates a new TokenService instance. It fails when the
// signing key is absent or the method is not an HMAC family algorithm;
// both are startup errors, never per request ones.
func NewTokenService(cfg Config, logger cms.Logger) (*TokenService, error) {
	if logger == nil {
		logger = cms.DefLogger{}
	}

	key := cfg.GetSigningKey()
	if key == "" {
		return nil, cms.ErrMissingSigningKey
	}

	method := jwt.GetSigningMethod(cfg.GetSigningMethod())
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing method: %q", cfg.GetSigningMethod())
	}

	expiration := cfg.GetTokenExpiration()
	if expiration <= 0 {
		expiration = 30 * time.Minute
	}

	return &TokenService{
		signingKey: []byte(key),
		method:     method,
		expiration: expiration,
		logger:     logger,
	}, nil
}

// Expiration returns the configured default token lifetime.
func (ts *TokenService) Expiration() time.Duration {
	return ts.expiration
}

// Generate mints a token asserting the given subject. The optional
// lifetime overrides the configured default; the password grant flow uses
// it to request a specific duration.
func (ts *TokenService) Generate(subject string, lifetime ...time.Duration) (string, error) {
	ttl := ts.expiration
	if len(lifetime) > 0 && lifetime[0] != 0 {
		ttl = lifetime[0]
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return ts.SignClaims(claims)
}

// SignClaims signs an arbitrary claim set using the configured signing key.
func (ts *TokenService) SignClaims(claims *Claims) (string, error) {
	if claims == nil {
		return "", fmt.Errorf("claims must not be nil")
	}

	token := jwt.NewWithClaims(ts.method, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses raw and checks signature integrity and expiry. Every
// failure mode maps to the token error taxonomy; callers only need to know
// that a non-nil error means "not authenticated", the distinction exists
// for diagnostics.
func (ts *TokenService) Validate(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validate encountered unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		ts.logger.Error("token validate could not decode claims")
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
