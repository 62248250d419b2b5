package auth_test

import (
	"context"
	"time"

	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
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

// testConfig implements auth.Config with fixed values
type testConfig struct {
	key        string
	method     string
	expiration time.Duration
	cookie     string
}

func (c testConfig) GetSigningKey() string             { return c.key }
func (c testConfig) GetSigningMethod() string          { return c.method }
func (c testConfig) GetTokenExpiration() time.Duration { return c.expiration }
func (c testConfig) GetCookieName() string             { return c.cookie }

func defaultTestConfig() testConfig {
	return testConfig{
		key:        "test-signing-key",
		method:     "HS256",
		expiration: 30 * time.Minute,
		cookie:     auth.DefaultCookieName,
	}
}

func newTestTokenService() *auth.TokenService {
	service, err := auth.NewTokenService(defaultTestConfig(), nil)
	if err != nil {
		panic(err)
	}
	return service
}
