package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	cms "github.com/goliatone/go-cms"
	"github.com/uptrace/bun"
)

// Tags persists article tags.
type Tags struct {
	db *bun.DB
}

func NewTags(db *bun.DB) *Tags {
	return &Tags{db: db}
}

// List returns tags, optionally filtered by a case-insensitive name search.
func (r *Tags) List(ctx context.Context, search string) ([]*cms.Tag, error) {
	var tags []*cms.Tag
	q := r.db.NewSelect().Model(&tags).Order("name ASC")
	if search != "" {
		q = q.Where("lower(?TableAlias.name) LIKE lower(?)", "%"+search+"%")
	}
	err := q.Scan(ctx)
	return tags, err
}

func (r *Tags) GetByID(ctx context.Context, id int64) (*cms.Tag, error) {
	tag := &cms.Tag{}
	err := r.db.NewSelect().Model(tag).Where("?TableAlias.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (r *Tags) NameExists(ctx context.Context, name string, excludeID ...int64) (bool, error) {
	q := r.db.NewSelect().Model((*cms.Tag)(nil)).Where("?TableAlias.name = ?", name)
	if len(excludeID) > 0 {
		q = q.Where("?TableAlias.id != ?", excludeID[0])
	}
	return q.Exists(ctx)
}

func (r *Tags) Create(ctx context.Context, tag *cms.Tag) (*cms.Tag, error) {
	if _, err := r.db.NewInsert().Model(tag).Exec(ctx); err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *Tags) Update(ctx context.Context, tag *cms.Tag) error {
	tag.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(tag).
		WherePK().
		Column("name", "updated_at").
		Exec(ctx)
	return err
}

func (r *Tags) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.NewDelete().Model((*cms.ArticleTag)(nil)).Where("tag_id = ?", id).Exec(ctx); err != nil {
		return err
	}
	_, err := r.db.NewDelete().Model((*cms.Tag)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}

func (r *Tags) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*cms.Tag)(nil)).Count(ctx)
}
