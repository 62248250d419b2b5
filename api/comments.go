package api

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/goliatone/go-cms/repository"
)

// CommentPayload is the comment creation body.
type CommentPayload struct {
	Content   string `json:"content" form:"content"`
	ArticleID int64  `json:"article_id" form:"article_id"`
}

// Validate will run validation rules
func (r CommentPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.ArticleID, validation.Required),
	)
}

func (ctl *Controller) ListComments(c *fiber.Ctx) error {
	comments, err := ctl.Comments.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}
	return c.JSON(comments)
}

func (ctl *Controller) GetComment(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	comment, err := ctl.Comments.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Comment")
		}
		return ctl.internalError(c, err)
	}

	return c.JSON(comment)
}

func (ctl *Controller) CreateComment(c *fiber.Ctx) error {
	payload := new(CommentPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	identity := auth.IdentityFromCtx(c)

	comment, err := ctl.Comments.Create(c.Context(), &cms.Comment{
		Content:   payload.Content,
		ArticleID: payload.ArticleID,
		AuthorID:  identity.ID,
	})
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(comment)
}
