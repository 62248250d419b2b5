package api

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/goliatone/go-cms/repository"
)

// ArticlePayload is the article creation body. The author is always the
// identity behind the token, never a caller supplied value.
type ArticlePayload struct {
	Title         string `json:"title" form:"title"`
	Content       string `json:"content" form:"content"`
	Published     bool   `json:"published" form:"published"`
	FeaturedImage string `json:"featured_image" form:"featured_image"`
	CategoryID    int64  `json:"category_id" form:"category_id"`
}

// Validate will run validation rules
func (r ArticlePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.CategoryID, validation.Required),
	)
}

func (ctl *Controller) ListArticles(c *fiber.Ctx) error {
	articles, err := ctl.Articles.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}
	return c.JSON(articles)
}

func (ctl *Controller) GetArticle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	article, err := ctl.Articles.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Article")
		}
		return ctl.internalError(c, err)
	}

	// Reading an article counts as a view.
	if err := ctl.Articles.IncrementViews(c.Context(), id); err != nil {
		ctl.Logger.Warn("failed to count view for article %d: %v", id, err)
	}

	return c.JSON(article)
}

func (ctl *Controller) CreateArticle(c *fiber.Ctx) error {
	payload := new(ArticlePayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	identity := auth.IdentityFromCtx(c)

	article, err := ctl.Articles.Create(c.Context(), &cms.Article{
		Title:         payload.Title,
		Content:       payload.Content,
		Published:     payload.Published,
		FeaturedImage: payload.FeaturedImage,
		CategoryID:    payload.CategoryID,
		AuthorID:      identity.ID,
	})
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(article)
}
