package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-cms/auth"
)

// Dashboard renders entity counts and the latest activity.
func (ctl *Controller) Dashboard(c *fiber.Ctx) error {
	ctx := c.Context()

	userCount, err := ctl.Users.Count(ctx)
	if err != nil {
		return ctl.internalError(c, err)
	}

	categoryCount, err := ctl.Categories.Count(ctx)
	if err != nil {
		return ctl.internalError(c, err)
	}

	articleCount, err := ctl.Articles.Count(ctx)
	if err != nil {
		return ctl.internalError(c, err)
	}

	tagCount, err := ctl.Tags.Count(ctx)
	if err != nil {
		return ctl.internalError(c, err)
	}

	productCount, err := ctl.Products.Count(ctx)
	if err != nil {
		return ctl.internalError(c, err)
	}

	commentCount, err := ctl.Comments.Count(ctx)
	if err != nil {
		return ctl.internalError(c, err)
	}

	recentArticles, err := ctl.Articles.Recent(ctx, 5)
	if err != nil {
		return ctl.internalError(c, err)
	}

	recentComments, err := ctl.Comments.Recent(ctx, 5)
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.Render("admin/dashboard", fiber.Map{
		"identity":        auth.IdentityFromCtx(c),
		"user_count":      userCount,
		"category_count":  categoryCount,
		"article_count":   articleCount,
		"tag_count":       tagCount,
		"product_count":   productCount,
		"comment_count":   commentCount,
		"recent_articles": recentArticles,
		"recent_comments": recentComments,
	})
}
