package admin

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-cms/auth"
)

// LoginForm renders the admin login view.
func (ctl *Controller) LoginForm(c *fiber.Ctx) error {
	return c.Render("admin/login", fiber.Map{})
}

// Login checks credentials, requires the superuser flag, and starts the
// cookie session. Failures re-render the form with an inline error so the
// browser stays on the page.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := ctl.Auth.Authenticate(c.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityInactive) {
			return c.Status(fiber.StatusBadRequest).Render("admin/login", fiber.Map{
				"error": "Inactive user",
			})
		}
		return c.Status(fiber.StatusUnauthorized).Render("admin/login", fiber.Map{
			"error": "Incorrect username or password",
		})
	}

	if !user.IsSuperuser {
		ctl.Logger.Info("admin login rejected for %q: not a superuser", username)
		return c.Status(fiber.StatusForbidden).Render("admin/login", fiber.Map{
			"error": "You do not have admin privileges",
		})
	}

	tokens := ctl.Auth.TokenService()
	token, err := tokens.Generate(user.Username)
	if err != nil {
		return ctl.internalError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     ctl.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokens.Expiration().Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/admin/", fiber.StatusSeeOther)
}

// Logout drops the session cookie. The token itself stays valid until it
// expires; there is no server side revocation.
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     ctl.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/admin/login", fiber.StatusSeeOther)
}
