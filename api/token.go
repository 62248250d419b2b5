package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-cms/auth"
)

// TokenResponse is the password grant response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token implements the password grant flow: form-encoded username and
// password in, signed bearer token out. Unknown users and wrong passwords
// are indistinguishable in the response.
func (ctl *Controller) Token(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := ctl.Auth.Login(c.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityInactive) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Inactive user"})
		}

		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Incorrect username or password",
		})
	}

	return c.JSON(TokenResponse{AccessToken: token, TokenType: "bearer"})
}
