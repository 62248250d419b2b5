package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
)

func (ctl *Controller) ListProducts(c *fiber.Ctx) error {
	products, err := ctl.Products.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.Render("admin/products", fiber.Map{
		"identity": auth.IdentityFromCtx(c),
		"products": products,
	})
}

func (ctl *Controller) ProductForm(c *fiber.Ctx) error {
	data := fiber.Map{"identity": auth.IdentityFromCtx(c)}

	if c.Params("id") != "" {
		id, err := paramID(c)
		if err != nil {
			return c.Redirect("/admin/products", fiber.StatusSeeOther)
		}
		product, err := ctl.Products.GetByID(c.Context(), id)
		if err != nil {
			return c.Redirect("/admin/products", fiber.StatusSeeOther)
		}
		data["product"] = product
	}

	return c.Render("admin/product_form", data)
}

func (ctl *Controller) CreateProduct(c *fiber.Ctx) error {
	name := c.FormValue("name")
	price, _ := strconv.ParseInt(c.FormValue("price"), 10, 64)

	if name == "" || price == 0 {
		return c.Status(fiber.StatusBadRequest).Render("admin/product_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"error":    "Name and price are required",
		})
	}

	slug := c.FormValue("slug")
	if slug == "" {
		existing, err := ctl.Products.Slugs(c.Context())
		if err != nil {
			return ctl.internalError(c, err)
		}
		slug = cms.UniqueSlug(name, existing, 100)
	}

	if _, err := ctl.Products.Create(c.Context(), &cms.Product{
		Name:          name,
		Price:         price,
		Slug:          slug,
		Description:   c.FormValue("description"),
		FeaturedImage: c.FormValue("featured_image"),
		SocialLinks:   c.FormValue("social_links"),
	}); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/products", fiber.StatusSeeOther)
}

func (ctl *Controller) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/products", fiber.StatusSeeOther)
	}

	product, err := ctl.Products.GetByID(c.Context(), id)
	if err != nil {
		return c.Redirect("/admin/products", fiber.StatusSeeOther)
	}

	name := c.FormValue("name")
	price, _ := strconv.ParseInt(c.FormValue("price"), 10, 64)

	if name == "" || price == 0 {
		return c.Status(fiber.StatusBadRequest).Render("admin/product_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"product":  product,
			"error":    "Name and price are required",
		})
	}

	slug := c.FormValue("slug")
	if slug == "" && name != product.Name {
		existing, err := ctl.Products.Slugs(c.Context(), id)
		if err != nil {
			return ctl.internalError(c, err)
		}
		slug = cms.UniqueSlug(name, existing, 100)
	}
	if slug == "" {
		slug = product.Slug
	}

	product.Name = name
	product.Price = price
	product.Slug = slug
	product.Description = c.FormValue("description")
	product.FeaturedImage = c.FormValue("featured_image")
	product.SocialLinks = c.FormValue("social_links")

	if err := ctl.Products.Update(c.Context(), product); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/products", fiber.StatusSeeOther)
}

func (ctl *Controller) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/products", fiber.StatusSeeOther)
	}

	if err := ctl.Products.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/products", fiber.StatusSeeOther)
}
