package api

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
)

// CreateUserPayload is the user creation body.
type CreateUserPayload struct {
	Username    string `json:"username" form:"username"`
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	IsActive    bool   `json:"is_active" form:"is_active"`
	IsSuperuser bool   `json:"is_superuser" form:"is_superuser"`
}

// Validate will run validation rules
func (r CreateUserPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 200), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 100)),
	)
}

// CreateUser registers a new user record with a hashed credential.
func (ctl *Controller) CreateUser(c *fiber.Ctx) error {
	payload := new(CreateUserPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(c, err)
	}

	if err := payload.Validate(); err != nil {
		return badRequest(c, err)
	}

	if taken, err := ctl.Users.UsernameExists(c.Context(), payload.Username); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Username already registered"})
	}

	if taken, err := ctl.Users.EmailExists(c.Context(), payload.Email); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Email already registered"})
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return ctl.internalError(c, err)
	}

	user, err := ctl.Users.Create(c.Context(), &cms.User{
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: hash,
		IsActive:     payload.IsActive,
		IsSuperuser:  payload.IsSuperuser,
	})
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.JSON(user)
}

// Me returns the identity behind the presented token.
func (ctl *Controller) Me(c *fiber.Ctx) error {
	return c.JSON(auth.IdentityFromCtx(c))
}
