package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
)

// ListUsers renders the user table.
func (ctl *Controller) ListUsers(c *fiber.Ctx) error {
	users, err := ctl.Users.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.Render("admin/users", fiber.Map{
		"identity": auth.IdentityFromCtx(c),
		"users":    users,
	})
}

// UserForm renders the add or edit form depending on the route.
func (ctl *Controller) UserForm(c *fiber.Ctx) error {
	data := fiber.Map{"identity": auth.IdentityFromCtx(c)}

	if c.Params("id") != "" {
		id, err := paramID(c)
		if err != nil {
			return c.Redirect("/admin/users", fiber.StatusSeeOther)
		}
		user, err := ctl.Users.GetByID(c.Context(), id)
		if err != nil {
			return c.Redirect("/admin/users", fiber.StatusSeeOther)
		}
		data["user"] = user
	}

	return c.Render("admin/user_form", data)
}

func (ctl *Controller) CreateUser(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	renderError := func(msg string) error {
		return c.Status(fiber.StatusBadRequest).Render("admin/user_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"error":    msg,
		})
	}

	if username == "" || email == "" || password == "" {
		return renderError("Username, email and password are required")
	}

	if taken, err := ctl.Users.UsernameExists(c.Context(), username); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return renderError("Username already registered")
	}

	if taken, err := ctl.Users.EmailExists(c.Context(), email); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return renderError("Email already registered")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return ctl.internalError(c, err)
	}

	if _, err := ctl.Users.Create(c.Context(), &cms.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     formBool(c, "is_active"),
		IsSuperuser:  formBool(c, "is_superuser"),
	}); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/users", fiber.StatusSeeOther)
}

func (ctl *Controller) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/users", fiber.StatusSeeOther)
	}

	user, err := ctl.Users.GetByID(c.Context(), id)
	if err != nil {
		return c.Redirect("/admin/users", fiber.StatusSeeOther)
	}

	renderError := func(msg string) error {
		return c.Status(fiber.StatusBadRequest).Render("admin/user_form", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"user":     user,
			"error":    msg,
		})
	}

	username := c.FormValue("username")
	email := c.FormValue("email")
	if username == "" || email == "" {
		return renderError("Username and email are required")
	}

	if taken, err := ctl.Users.UsernameExists(c.Context(), username, id); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return renderError("Username already registered")
	}

	if taken, err := ctl.Users.EmailExists(c.Context(), email, id); err != nil {
		return ctl.internalError(c, err)
	} else if taken {
		return renderError("Email already registered")
	}

	user.Username = username
	user.Email = email
	user.IsActive = formBool(c, "is_active")
	user.IsSuperuser = formBool(c, "is_superuser")

	// A blank password keeps the current one.
	if password := c.FormValue("password"); password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return ctl.internalError(c, err)
		}
		user.PasswordHash = hash
	}

	if err := ctl.Users.Update(c.Context(), user); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/users", fiber.StatusSeeOther)
}

// DeleteUser removes a user. Deleting the signed in account is forbidden
// regardless of privileges.
func (ctl *Controller) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/users", fiber.StatusSeeOther)
	}

	target, err := ctl.Users.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityNotFound) {
			return c.Redirect("/admin/users", fiber.StatusSeeOther)
		}
		return ctl.internalError(c, err)
	}

	identity := auth.IdentityFromCtx(c)
	if err := auth.CheckAll(identity, auth.NotSelf(target.Username)); err != nil {
		users, lerr := ctl.Users.List(c.Context())
		if lerr != nil {
			return ctl.internalError(c, lerr)
		}
		return c.Status(fiber.StatusBadRequest).Render("admin/users", fiber.Map{
			"identity": identity,
			"users":    users,
			"error":    "You cannot delete yourself",
		})
	}

	if err := ctl.Users.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/users", fiber.StatusSeeOther)
}
