// Package admin serves the server rendered management panel. Every route
// except login rides the cookie session and requires an active superuser.
package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
	"github.com/goliatone/go-cms/repository"
)

// Controller holds the admin handlers and their collaborators.
type Controller struct {
	Auth       *auth.Authenticator
	Middleware *auth.Middleware
	Users      *repository.Users
	Categories *repository.Categories
	Articles   *repository.Articles
	Tags       *repository.Tags
	Products   *repository.Products
	Comments   *repository.Comments
	CookieName string
	Logger     cms.Logger
}

// Register mounts the admin routes under the given router. The login and
// logout pair stay outside the guard; everything else goes through
// AdminOnly.
func Register(app fiber.Router, c *Controller) {
	if c.Logger == nil {
		c.Logger = cms.DefLogger{}
	}
	if c.CookieName == "" {
		c.CookieName = auth.DefaultCookieName
	}

	app.Get("/login", c.LoginForm)
	app.Post("/login", c.Login)
	app.Get("/logout", c.Logout)

	mw := c.Middleware

	app.Get("/", mw.AdminOnly(), c.Dashboard)

	app.Get("/users", mw.AdminOnly(), c.ListUsers)
	app.Get("/users/add", mw.AdminOnly(), c.UserForm)
	app.Post("/users/add", mw.AdminOnly(), c.CreateUser)
	app.Get("/users/:id/edit", mw.AdminOnly(), c.UserForm)
	app.Post("/users/:id/edit", mw.AdminOnly(), c.UpdateUser)
	app.Post("/users/:id/delete", mw.AdminOnly(), c.DeleteUser)

	app.Get("/categories", mw.AdminOnly(), c.ListCategories)
	app.Get("/categories/add", mw.AdminOnly(), c.CategoryForm)
	app.Post("/categories/add", mw.AdminOnly(), c.CreateCategory)
	app.Get("/categories/:id/edit", mw.AdminOnly(), c.CategoryForm)
	app.Post("/categories/:id/edit", mw.AdminOnly(), c.UpdateCategory)
	app.Post("/categories/:id/delete", mw.AdminOnly(), c.DeleteCategory)

	app.Get("/articles", mw.AdminOnly(), c.ListArticles)
	app.Get("/articles/add", mw.AdminOnly(), c.ArticleForm)
	app.Post("/articles/add", mw.AdminOnly(), c.CreateArticle)
	app.Get("/articles/:id/edit", mw.AdminOnly(), c.ArticleForm)
	app.Post("/articles/:id/edit", mw.AdminOnly(), c.UpdateArticle)
	app.Post("/articles/:id/delete", mw.AdminOnly(), c.DeleteArticle)

	app.Get("/tags", mw.AdminOnly(), c.ListTags)
	app.Get("/tags/add", mw.AdminOnly(), c.TagForm)
	app.Post("/tags/add", mw.AdminOnly(), c.CreateTag)
	app.Get("/tags/:id/edit", mw.AdminOnly(), c.TagForm)
	app.Post("/tags/:id/edit", mw.AdminOnly(), c.UpdateTag)
	app.Post("/tags/:id/delete", mw.AdminOnly(), c.DeleteTag)

	app.Get("/products", mw.AdminOnly(), c.ListProducts)
	app.Get("/products/add", mw.AdminOnly(), c.ProductForm)
	app.Post("/products/add", mw.AdminOnly(), c.CreateProduct)
	app.Get("/products/:id/edit", mw.AdminOnly(), c.ProductForm)
	app.Post("/products/:id/edit", mw.AdminOnly(), c.UpdateProduct)
	app.Post("/products/:id/delete", mw.AdminOnly(), c.DeleteProduct)

	app.Get("/comments", mw.AdminOnly(), c.ListComments)
	app.Post("/comments/:id/delete", mw.AdminOnly(), c.DeleteComment)
}

func paramID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func formBool(c *fiber.Ctx, name string) bool {
	switch c.FormValue(name) {
	case "on", "true", "1":
		return true
	}
	return false
}

// formInt64List collects every value posted under name, as multi selects do.
func formInt64List(c *fiber.Ctx, name string) []int64 {
	raw := c.Context().PostArgs().PeekMulti(name)
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (ctl *Controller) internalError(c *fiber.Ctx, err error) error {
	ctl.Logger.Error("admin internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{})
}
