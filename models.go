package cms

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the identity record. Username and Email are unique across all
// users; PasswordHash is only ever produced by the credential hasher.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Username     string    `bun:"username,notnull,unique" json:"username"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	IsActive     bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	IsSuperuser  bool      `bun:"is_superuser,notnull,default:false" json:"is_superuser"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// Category groups articles.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull,unique" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// Article is a piece of content authored by a user in a category.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:art"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Title         string    `bun:"title,notnull" json:"title"`
	Content       string    `bun:"content,notnull" json:"content"`
	Published     bool      `bun:"published,notnull,default:false" json:"published"`
	FeaturedImage string    `bun:"featured_image" json:"featured_image,omitempty"`
	Views         int64     `bun:"views,notnull,default:0" json:"views"`
	CategoryID    int64     `bun:"category_id,notnull" json:"category_id"`
	AuthorID      int64     `bun:"author_id,notnull" json:"author_id"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	Author   *User     `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Tags     []*Tag    `bun:"m2m:article_tags,join:Article=Tag" json:"tags,omitempty"`
}

// Tag labels articles.
type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:tag"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// ArticleTag is the articles <-> tags join table.
type ArticleTag struct {
	bun.BaseModel `bun:"table:article_tags,alias:artag"`

	ArticleID int64    `bun:"article_id,pk" json:"article_id"`
	Article   *Article `bun:"rel:belongs-to,join:article_id=id" json:"-"`
	TagID     int64    `bun:"tag_id,pk" json:"tag_id"`
	Tag       *Tag     `bun:"rel:belongs-to,join:tag_id=id" json:"-"`
}

// Product is a promoted item, optionally linked to articles.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:prd"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Price         int64     `bun:"price,notnull" json:"price"`
	Slug          string    `bun:"slug,notnull,unique" json:"slug"`
	Description   string    `bun:"description" json:"description,omitempty"`
	FeaturedImage string    `bun:"featured_image" json:"featured_image,omitempty"`
	SocialLinks   string    `bun:"social_links" json:"social_links,omitempty"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`

	Articles []*Article `bun:"m2m:product_articles,join:Product=Article" json:"articles,omitempty"`
}

// ProductArticle is the products <-> articles join table.
type ProductArticle struct {
	bun.BaseModel `bun:"table:product_articles,alias:prdart"`

	ProductID int64    `bun:"product_id,pk" json:"product_id"`
	Product   *Product `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	ArticleID int64    `bun:"article_id,pk" json:"article_id"`
	Article   *Article `bun:"rel:belongs-to,join:article_id=id" json:"-"`
}

// Comment is a reader comment on an article.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cmt"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Content   string    `bun:"content,notnull" json:"content"`
	ArticleID int64     `bun:"article_id,notnull" json:"article_id"`
	AuthorID  int64     `bun:"author_id,notnull" json:"author_id"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`

	Article *Article `bun:"rel:belongs-to,join:article_id=id" json:"article,omitempty"`
	Author  *User    `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
}
