package api

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/repository"
)

// CategoryPayload is the category creation body.
type CategoryPayload struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

// Validate will run validation rules
func (r CategoryPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

func (ctl *Controller) ListCategories(c *fiber.Ctx) error {
	categories, err := ctl.Categories.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}
	return c.JSON(categories)
}

func (ctl *Controller) GetCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	category, err := ctl.Categories.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Category")
		}
		return ctl.internalError(c, err)
	}

	return c.JSON(category)
}

func (ctl *Controller) CreateCategory(c *fiber.Ctx) error {
	payload := new(CategoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	category, err := ctl.Categories.Create(c.Context(), &cms.Category{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(category)
}
