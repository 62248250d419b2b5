package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/uptrace/bun"
)

// Users is the identity store. It satisfies auth.IdentityProvider.
type Users struct {
	db *bun.DB
}

var _ auth.IdentityProvider = (*Users)(nil)

// NewUsers returns a Users repository.
func NewUsers(db *bun.DB) *Users {
	return &Users{db: db}
}

// FindIdentityByUsername looks up a user by its unique handle. Returns
// auth.ErrIdentityNotFound when no row matches.
func (r *Users) FindIdentityByUsername(ctx context.Context, username string) (*cms.User, error) {
	user := &cms.User{}
	err := r.db.NewSelect().
		Model(user).
		Where("?TableAlias.username = ?", username).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByID fetches one user. Returns auth.ErrIdentityNotFound when missing.
func (r *Users) GetByID(ctx context.Context, id int64) (*cms.User, error) {
	user := &cms.User{}
	err := r.db.NewSelect().Model(user).Where("?TableAlias.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns every user ordered by creation.
func (r *Users) List(ctx context.Context) ([]*cms.User, error) {
	var users []*cms.User
	err := r.db.NewSelect().Model(&users).Order("created_at ASC").Scan(ctx)
	return users, err
}

// Count returns the number of users.
func (r *Users) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*cms.User)(nil)).Count(ctx)
}

// UsernameExists reports whether the handle is taken, optionally ignoring
// one record (used by edits).
func (r *Users) UsernameExists(ctx context.Context, username string, excludeID ...int64) (bool, error) {
	q := r.db.NewSelect().Model((*cms.User)(nil)).Where("?TableAlias.username = ?", username)
	if len(excludeID) > 0 {
		q = q.Where("?TableAlias.id != ?", excludeID[0])
	}
	return q.Exists(ctx)
}

// EmailExists reports whether the contact address is taken, optionally
// ignoring one record.
func (r *Users) EmailExists(ctx context.Context, email string, excludeID ...int64) (bool, error) {
	q := r.db.NewSelect().Model((*cms.User)(nil)).Where("?TableAlias.email = ?", email)
	if len(excludeID) > 0 {
		q = q.Where("?TableAlias.id != ?", excludeID[0])
	}
	return q.Exists(ctx)
}

// Create inserts a new user record.
func (r *Users) Create(ctx context.Context, user *cms.User) (*cms.User, error) {
	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// Update persists changes to an existing user.
func (r *Users) Update(ctx context.Context, user *cms.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		Column("username", "email", "password_hash", "is_active", "is_superuser", "updated_at").
		Exec(ctx)
	return err
}

// Delete removes a user record.
func (r *Users) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().Model((*cms.User)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}
