package repository

import (
	"context"
	"database/sql"
	"errors"

	cms "github.com/goliatone/go-cms"
	"github.com/uptrace/bun"
)

// Comments persists article comments.
type Comments struct {
	db *bun.DB
}

func NewComments(db *bun.DB) *Comments {
	return &Comments{db: db}
}

func (r *Comments) List(ctx context.Context) ([]*cms.Comment, error) {
	var comments []*cms.Comment
	err := r.db.NewSelect().
		Model(&comments).
		Relation("Author").
		Relation("Article").
		Order("created_at DESC").
		Scan(ctx)
	return comments, err
}

func (r *Comments) GetByID(ctx context.Context, id int64) (*cms.Comment, error) {
	comment := &cms.Comment{}
	err := r.db.NewSelect().
		Model(comment).
		Relation("Author").
		Relation("Article").
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (r *Comments) Create(ctx context.Context, comment *cms.Comment) (*cms.Comment, error) {
	if _, err := r.db.NewInsert().Model(comment).Exec(ctx); err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *Comments) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().Model((*cms.Comment)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}

// Recent returns the latest n comments with author and article loaded.
func (r *Comments) Recent(ctx context.Context, n int) ([]*cms.Comment, error) {
	var comments []*cms.Comment
	err := r.db.NewSelect().
		Model(&comments).
		Relation("Author").
		Relation("Article").
		Order("created_at DESC").
		Limit(n).
		Scan(ctx)
	return comments, err
}

func (r *Comments) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*cms.Comment)(nil)).Count(ctx)
}
