package auth_test

import (
	"testing"

	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/stretchr/testify/assert"
)

func TestGuards(t *testing.T) {
	active := &cms.User{Username: "alice", IsActive: true}
	inactive := &cms.User{Username: "bob", IsActive: false}
	admin := &cms.User{Username: "root", IsActive: true, IsSuperuser: true}

	tests := []struct {
		name     string
		guard    auth.Guard
		identity *cms.User
		wantErr  error
	}{
		{
			name:     "Authenticated passes with identity",
			guard:    auth.Authenticated,
			identity: active,
		},
		{
			name:    "Authenticated rejects nil identity",
			guard:   auth.Authenticated,
			wantErr: auth.ErrNotAuthenticated,
		},
		{
			name:     "Active passes for active user",
			guard:    auth.Active,
			identity: active,
		},
		{
			name:     "Active rejects inactive user",
			guard:    auth.Active,
			identity: inactive,
			wantErr:  auth.ErrIdentityInactive,
		},
		{
			name:    "Active rejects nil identity",
			guard:   auth.Active,
			wantErr: auth.ErrNotAuthenticated,
		},
		{
			name:     "Administrator passes for superuser",
			guard:    auth.Administrator,
			identity: admin,
		},
		{
			name:     "Administrator rejects regular user",
			guard:    auth.Administrator,
			identity: active,
			wantErr:  auth.ErrForbidden,
		},
		{
			name:     "OwnerOrAdmin passes for owner",
			guard:    auth.OwnerOrAdmin("alice"),
			identity: active,
		},
		{
			name:     "OwnerOrAdmin passes for superuser",
			guard:    auth.OwnerOrAdmin("alice"),
			identity: admin,
		},
		{
			name:     "OwnerOrAdmin rejects other users",
			guard:    auth.OwnerOrAdmin("alice"),
			identity: inactive,
			wantErr:  auth.ErrForbidden,
		},
		{
			name:     "NotSelf passes for other targets",
			guard:    auth.NotSelf("bob"),
			identity: active,
		},
		{
			name:     "NotSelf rejects the caller's own account",
			guard:    auth.NotSelf("alice"),
			identity: active,
			wantErr:  auth.ErrSelfAction,
		},
		{
			name:     "NotSelf rejects superusers targeting themselves",
			guard:    auth.NotSelf("root"),
			identity: admin,
			wantErr:  auth.ErrSelfAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Check(tt.identity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckAll(t *testing.T) {
	inactive := &cms.User{Username: "bob", IsActive: false}

	t.Run("returns the first failure in order", func(t *testing.T) {
		err := auth.CheckAll(inactive, auth.Authenticated, auth.Active, auth.Administrator)
		assert.ErrorIs(t, err, auth.ErrIdentityInactive)
	})

	t.Run("passes when every guard passes", func(t *testing.T) {
		admin := &cms.User{Username: "root", IsActive: true, IsSuperuser: true}
		err := auth.CheckAll(admin, auth.Authenticated, auth.Active, auth.Administrator)
		assert.NoError(t, err)
	})

	t.Run("skips nil guards", func(t *testing.T) {
		admin := &cms.User{Username: "root", IsActive: true, IsSuperuser: true}
		err := auth.CheckAll(admin, nil, auth.Authenticated)
		assert.NoError(t, err)
	})

	t.Run("passes with no guards", func(t *testing.T) {
		assert.NoError(t, auth.CheckAll(nil))
	})
}
