package admin

import (
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
)

// ListTags renders the tag table, filtered when a search term is given.
func (ctl *Controller) ListTags(c *fiber.Ctx) error {
	search := c.Query("search")

	tags, err := ctl.Tags.List(c.Context(), search)
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.Render("admin/tags", fiber.Map{
		"identity": auth.IdentityFromCtx(c),
		"tags":     tags,
		"search":   search,
	})
}

func (ctl *Controller) TagForm(c *fiber.Ctx) error {
	data := fiber.Map{"identity": auth.IdentityFromCtx(c)}

	if c.Params("id") != "" {
		id, err := paramID(c)
		if err != nil {
			return c.Redirect("/admin/tags", fiber.StatusSeeOther)
		}
		tag, err := ctl.Tags.GetByID(c.Context(), id)
		if err != nil {
			return c.Redirect("/admin/tags", fiber.StatusSeeOther)
		}
		data["tag"] = tag
	}

	return c.Render("admin/tag_form", data)
}

func (ctl *Controller) CreateTag(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).Render("admin/tag_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"error":    "Name is required",
		})
	}

	if taken, err := ctl.Tags.NameExists(c.Context(), name); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return c.Status(fiber.StatusBadRequest).Render("admin/tag_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"error":    "Tag already exists",
		})
	}

	if _, err := ctl.Tags.Create(c.Context(), &cms.Tag{Name: name}); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/tags", fiber.StatusSeeOther)
}

func (ctl *Controller) UpdateTag(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/tags", fiber.StatusSeeOther)
	}

	tag, err := ctl.Tags.GetByID(c.Context(), id)
	if err != nil {
		return c.Redirect("/admin/tags", fiber.StatusSeeOther)
	}

	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).Render("admin/tag_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"tag":      tag,
			"error":    "Name is required",
		})
	}

	tag.Name = name
	if err := ctl.Tags.Update(c.Context(), tag); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/tags", fiber.StatusSeeOther)
}

func (ctl *Controller) DeleteTag(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/tags", fiber.StatusSeeOther)
	}

	if err := ctl.Tags.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/tags", fiber.StatusSeeOther)
}
