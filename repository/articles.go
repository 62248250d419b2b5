package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	cms "github.com/goliatone/go-cms"
	"github.com/uptrace/bun"
)

// Articles persists articles and their tag links.
type Articles struct {
	db *bun.DB
}

func NewArticles(db *bun.DB) *Articles {
	return &Articles{db: db}
}

func (r *Articles) List(ctx context.Context) ([]*cms.Article, error) {
	var articles []*cms.Article
	err := r.db.NewSelect().
		Model(&articles).
		Relation("Author").
		Relation("Category").
		Order("created_at DESC").
		Scan(ctx)
	return articles, err
}

func (r *Articles) GetByID(ctx context.Context, id int64) (*cms.Article, error) {
	article := &cms.Article{}
	err := r.db.NewSelect().
		Model(article).
		Relation("Author").
		Relation("Category").
		Relation("Tags").
		Where("?TableAlias.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func (r *Articles) Create(ctx context.Context, article *cms.Article) (*cms.Article, error) {
	if _, err := r.db.NewInsert().Model(article).Exec(ctx); err != nil {
		return nil, err
	}
	return article, nil
}

func (r *Articles) Update(ctx context.Context, article *cms.Article) error {
	article.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(article).
		WherePK().
		Column("title", "content", "published", "featured_image", "category_id", "updated_at").
		Exec(ctx)
	return err
}

func (r *Articles) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.NewDelete().Model((*cms.ArticleTag)(nil)).Where("article_id = ?", id).Exec(ctx); err != nil {
		return err
	}
	_, err := r.db.NewDelete().Model((*cms.Article)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}

// SetTags replaces the article's tag links.
func (r *Articles) SetTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	if _, err := r.db.NewDelete().Model((*cms.ArticleTag)(nil)).Where("article_id = ?", articleID).Exec(ctx); err != nil {
		return err
	}

	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]*cms.ArticleTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, &cms.ArticleTag{ArticleID: articleID, TagID: tagID})
	}

	_, err := r.db.NewInsert().Model(&links).Exec(ctx)
	return err
}

// IncrementViews bumps the read counter for a public article view.
func (r *Articles) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*cms.Article)(nil)).
		Set("views = views + 1").
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// Recent returns the latest n articles with author and category loaded.
func (r *Articles) Recent(ctx context.Context, n int) ([]*cms.Article, error) {
	var articles []*cms.Article
	err := r.db.NewSelect().
		Model(&articles).
		Relation("Author").
		Relation("Category").
		Order("created_at DESC").
		Limit(n).
		Scan(ctx)
	return articles, err
}

func (r *Articles) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*cms.Article)(nil)).Count(ctx)
}
