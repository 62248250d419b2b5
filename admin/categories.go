package admin

import (
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
)

func (ctl *Controller) ListCategories(c *fiber.Ctx) error {
	categories, err := ctl.Categories.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.Render("admin/categories", fiber.Map{
		"identity":   auth.IdentityFromCtx(c),
		"categories": categories,
	})
}

func (ctl *Controller) CategoryForm(c *fiber.Ctx) error {
	data := fiber.Map{"identity": auth.IdentityFromCtx(c)}

	if c.Params("id") != "" {
		id, err := paramID(c)
		if err != nil {
			return c.Redirect("/admin/categories", fiber.StatusSeeOther)
		}
		category, err := ctl.Categories.GetByID(c.Context(), id)
		if err != nil {
			return c.Redirect("/admin/categories", fiber.StatusSeeOther)
		}
		data["category"] = category
	}

	return c.Render("admin/category_form", data)
}

func (ctl *Controller) CreateCategory(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).Render("admin/category_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"error":    "Name is required",
		})
	}

	if _, err := ctl.Categories.Create(c.Context(), &cms.Category{
		Name:        name,
		Description: c.FormValue("description"),
	}); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/categories", fiber.StatusSeeOther)
}

func (ctl *Controller) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/categories", fiber.StatusSeeOther)
	}

	category, err := ctl.Categories.GetByID(c.Context(), id)
	if err != nil {
		return c.Redirect("/admin/categories", fiber.StatusSeeOther)
	}

	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).Render("admin/category_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"category": category,
			"error":    "Name is required",
		})
	}

	category.Name = name
	category.Description = c.FormValue("description")

	if err := ctl.Categories.Update(c.Context(), category); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/categories", fiber.StatusSeeOther)
}

func (ctl *Controller) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/categories", fiber.StatusSeeOther)
	}

	if err := ctl.Categories.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/categories", fiber.StatusSeeOther)
}
