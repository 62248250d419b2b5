// Package api exposes the JSON API. Protected routes authenticate with a
// bearer token; guard chains are declared per route at registration time.
package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/goliatone/go-cms/repository"
)

// Controller holds the API handlers and their collaborators.
type Controller struct {
	Auth       *auth.Authenticator
	Middleware *auth.Middleware
	Users      *repository.Users
	Categories *repository.Categories
	Articles   *repository.Articles
	Tags       *repository.Tags
	Products   *repository.Products
	Comments   *repository.Comments
	UploadDir  string
	Logger     cms.Logger
}

// Register mounts every API route under the given router.
func Register(app fiber.Router, c *Controller) {
	if c.Logger == nil {
		c.Logger = cms.DefLogger{}
	}

	mw := c.Middleware

	app.Post("/token", c.Token)

	app.Post("/users", c.CreateUser)
	app.Get("/users/me", mw.Protected(auth.Active), c.Me)

	app.Get("/categories", c.ListCategories)
	app.Get("/categories/:id", c.GetCategory)
	app.Post("/categories", mw.Protected(auth.Active), c.CreateCategory)

	app.Get("/articles", c.ListArticles)
	app.Get("/articles/:id", c.GetArticle)
	app.Post("/articles", mw.Protected(auth.Active), c.CreateArticle)

	app.Get("/comments", c.ListComments)
	app.Get("/comments/:id", c.GetComment)
	app.Post("/comments", mw.Protected(auth.Active), c.CreateComment)

	app.Get("/tags", c.ListTags)
	app.Get("/tags/:id", c.GetTag)
	app.Post("/tags", mw.Protected(auth.Active, auth.Administrator), c.CreateTag)
	app.Put("/tags/:id", mw.Protected(auth.Active, auth.Administrator), c.UpdateTag)
	app.Delete("/tags/:id", mw.Protected(auth.Active, auth.Administrator), c.DeleteTag)

	app.Get("/products", c.ListProducts)
	app.Get("/products/by-slug/:slug", c.GetProductBySlug)
	app.Get("/products/:id", c.GetProduct)
	app.Post("/products", mw.Protected(auth.Active, auth.Administrator), c.CreateProduct)
	app.Put("/products/:id", mw.Protected(auth.Active, auth.Administrator), c.UpdateProduct)
	app.Delete("/products/:id", mw.Protected(auth.Active, auth.Administrator), c.DeleteProduct)

	app.Post("/upload/image", mw.Protected(auth.Active, auth.Administrator), c.UploadImage)
}

func paramID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": what + " not found"})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
}

func (ctl *Controller) internalError(c *fiber.Ctx, err error) error {
	ctl.Logger.Error("api internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
}
