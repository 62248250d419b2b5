package repository

import (
	"context"
	"database/sql"

	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// OpenDB opens the sqlite database and registers the m2m join models.
func OpenDB(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.RegisterModel((*cms.ArticleTag)(nil), (*cms.ProductArticle)(nil))

	return db, nil
}

// CreateSchema creates every table that does not exist yet.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*cms.User)(nil),
		(*cms.Category)(nil),
		(*cms.Article)(nil),
		(*cms.Tag)(nil),
		(*cms.ArticleTag)(nil),
		(*cms.Product)(nil),
		(*cms.ProductArticle)(nil),
		(*cms.Comment)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}

// SeedAdmin creates the configured superuser when the users table is
// empty, mirroring first-boot behavior.
func SeedAdmin(ctx context.Context, db *bun.DB, cfg cms.Config) (*cms.User, error) {
	count, err := db.NewSelect().Model((*cms.User)(nil)).Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	admin := &cms.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  true,
	}

	if _, err := db.NewInsert().Model(admin).Exec(ctx); err != nil {
		return nil, err
	}

	return admin, nil
}
