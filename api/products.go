package api

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/repository"
)

// ProductPayload is the product create/update body. The slug is derived
// from the name when absent.
type ProductPayload struct {
	Name          string `json:"name" form:"name"`
	Price         int64  `json:"price" form:"price"`
	Slug          string `json:"slug" form:"slug"`
	Description   string `json:"description" form:"description"`
	FeaturedImage string `json:"featured_image" form:"featured_image"`
	SocialLinks   string `json:"social_links" form:"social_links"`
}

// Validate will run validation rules
func (r ProductPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Price, validation.Required),
	)
}

func (ctl *Controller) ListProducts(c *fiber.Ctx) error {
	products, err := ctl.Products.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}
	return c.JSON(products)
}

func (ctl *Controller) GetProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	product, err := ctl.Products.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product")
		}
		return ctl.internalError(c, err)
	}

	return c.JSON(product)
}

func (ctl *Controller) GetProductBySlug(c *fiber.Ctx) error {
	product, err := ctl.Products.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product")
		}
		return ctl.internalError(c, err)
	}

	return c.JSON(product)
}

func (ctl *Controller) CreateProduct(c *fiber.Ctx) error {
	payload := new(ProductPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	slug := payload.Slug
	if slug == "" {
		existing, err := ctl.Products.Slugs(c.Context())
		if err != nil {
			return ctl.internalError(c, err)
		}
		slug = cms.UniqueSlug(payload.Name, existing, 100)
	}

	product, err := ctl.Products.Create(c.Context(), &cms.Product{
		Name:          payload.Name,
		Price:         payload.Price,
		Slug:          slug,
		Description:   payload.Description,
		FeaturedImage: payload.FeaturedImage,
		SocialLinks:   payload.SocialLinks,
	})
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(product)
}

func (ctl *Controller) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	product, err := ctl.Products.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product")
		}
		return ctl.internalError(c, err)
	}

	payload := new(ProductPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	slug := payload.Slug
	if slug == "" && payload.Name != product.Name {
		existing, err := ctl.Products.Slugs(c.Context(), id)
		if err != nil {
			return ctl.internalError(c, err)
		}
		slug = cms.UniqueSlug(payload.Name, existing, 100)
	}
	if slug == "" {
		slug = product.Slug
	}

	product.Name = payload.Name
	product.Price = payload.Price
	product.Slug = slug
	product.Description = payload.Description
	product.FeaturedImage = payload.FeaturedImage
	product.SocialLinks = payload.SocialLinks

	if err := ctl.Products.Update(c.Context(), product); err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(product)
}

func (ctl *Controller) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err)
	}

	if _, err := ctl.Products.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product")
		}
		return ctl.internalError(c, err)
	}

	if err := ctl.Products.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
