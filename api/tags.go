package api

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/repository"
)

// TagPayload is the tag create/update body.
type TagPayload struct {
	Name string `json:"name" form:"name"`
}

// Validate will run validation rules
func (r TagPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
	)
}

func (ctl *Controller) ListTags(c *fiber.Ctx) error {
	tags, err := ctl.Tags.List(c.Context(), c.Query("search"))
	if err != nil {
		return ctl.internalError(c, err)
	}
	return c.JSON(tags)
}

func (ctl *Controller) GetTag(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	tag, err := ctl.Tags.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Tag")
		}
		return ctl.internalError(c, err)
	}

	return c.JSON(tag)
}

func (ctl *Controller) CreateTag(c *fiber.Ctx) error {
	payload := new(TagPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	if taken, err := ctl.Tags.NameExists(c.Context(), payload.Name); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Tag already exists"})
	}

	tag, err := ctl.Tags.Create(c.Context(), &cms.Tag{Name: payload.Name})
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(tag)
}

func (ctl *Controller) UpdateTag(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	tag, err := ctl.Tags.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Tag")
		}
		return ctl.internalError(c, err)
	}

	payload := new(TagPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	tag.Name = payload.Name
	if err := ctl.Tags.Update(c.Context(), tag); err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(tag)
}

func (ctl *Controller) DeleteTag(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	if _, err := ctl.Tags.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Tag")
		}
		return ctl.internalError(c, err)
	}

	if err := ctl.Tags.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
