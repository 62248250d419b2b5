package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	cms "github.com/goliatone/go-cms"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned by entity repositories when no row matches.
var ErrNotFound = errors.New("record not found")

// Categories persists article categories.
type Categories struct {
	db *bun.DB
}

func NewCategories(db *bun.DB) *Categories {
	return &Categories{db: db}
}

func (r *Categories) List(ctx context.Context) ([]*cms.Category, error) {
	var categories []*cms.Category
	err := r.db.NewSelect().Model(&categories).Order("name ASC").Scan(ctx)
	return categories, err
}

func (r *Categories) GetByID(ctx context.Context, id int64) (*cms.Category, error) {
	category := &cms.Category{}
	err := r.db.NewSelect().Model(category).Where("?TableAlias.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (r *Categories) NameExists(ctx context.Context, name string, excludeID ...int64) (bool, error) {
	q := r.db.NewSelect().Model((*cms.Category)(nil)).Where("?TableAlias.name = ?", name)
	if len(excludeID) > 0 {
		q = q.Where("?TableAlias.id != ?", excludeID[0])
	}
	return q.Exists(ctx)
}

func (r *Categories) Create(ctx context.Context, category *cms.Category) (*cms.Category, error) {
	if _, err := r.db.NewInsert().Model(category).Exec(ctx); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *Categories) Update(ctx context.Context, category *cms.Category) error {
	category.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(category).
		WherePK().
		Column("name", "description", "updated_at").
		Exec(ctx)
	return err
}

func (r *Categories) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().Model((*cms.Category)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}

func (r *Categories) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*cms.Category)(nil)).Count(ctx)
}
