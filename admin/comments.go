package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-cms/auth"
)

func (ctl *Controller) ListComments(c *fiber.Ctx) error {
	comments, err := ctl.Comments.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.Render("admin/comments", fiber.Map{
		"identity": auth.IdentityFromCtx(c),
		"comments": comments,
	})
}

func (ctl *Controller) DeleteComment(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/comments", fiber.StatusSeeOther)
	}

	if err := ctl.Comments.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/comments", fiber.StatusSeeOther)
}
