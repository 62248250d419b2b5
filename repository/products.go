package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	cms "github.com/goliatone/go-cms"
	"github.com/uptrace/bun"
)

// Products persists promoted products.
type Products struct {
	db *bun.DB
}

func NewProducts(db *bun.DB) *Products {
	return &Products{db: db}
}

func (r *Products) List(ctx context.Context) ([]*cms.Product, error) {
	var products []*cms.Product
	err := r.db.NewSelect().Model(&products).Order("created_at DESC").Scan(ctx)
	return products, err
}

func (r *Products) GetByID(ctx context.Context, id int64) (*cms.Product, error) {
	product := &cms.Product{}
	err := r.db.NewSelect().Model(product).Where("?TableAlias.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *Products) GetBySlug(ctx context.Context, slug string) (*cms.Product, error) {
	product := &cms.Product{}
	err := r.db.NewSelect().Model(product).Where("?TableAlias.slug = ?", slug).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Slugs returns every product slug, optionally excluding one record.
// Used to keep generated slugs unique.
func (r *Products) Slugs(ctx context.Context, excludeID ...int64) ([]string, error) {
	var slugs []string
	q := r.db.NewSelect().Model((*cms.Product)(nil)).Column("slug")
	if len(excludeID) > 0 {
		q = q.Where("?TableAlias.id != ?", excludeID[0])
	}
	err := q.Scan(ctx, &slugs)
	return slugs, err
}

func (r *Products) Create(ctx context.Context, product *cms.Product) (*cms.Product, error) {
	if _, err := r.db.NewInsert().Model(product).Exec(ctx); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Products) Update(ctx context.Context, product *cms.Product) error {
	product.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(product).
		WherePK().
		Column("name", "price", "slug", "description", "featured_image", "social_links", "updated_at").
		Exec(ctx)
	return err
}

func (r *Products) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.NewDelete().Model((*cms.ProductArticle)(nil)).Where("product_id = ?", id).Exec(ctx); err != nil {
		return err
	}
	_, err := r.db.NewDelete().Model((*cms.Product)(nil)).Where("id = ?", id).Exec(ctx)
	return err
}

func (r *Products) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*cms.Product)(nil)).Count(ctx)
}
