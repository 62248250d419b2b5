package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/auth"
)

func (ctl *Controller) ListArticles(c *fiber.Ctx) error {
	articles, err := ctl.Articles.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}

	return c.Render("admin/articles", fiber.Map{
		"identity": auth.IdentityFromCtx(c),
		"articles": articles,
	})
}

func (ctl *Controller) ArticleForm(c *fiber.Ctx) error {
	categories, err := ctl.Categories.List(c.Context())
	if err != nil {
		return ctl.internalError(c, err)
	}

	tags, err := ctl.Tags.List(c.Context(), "")
	if err != nil {
		return ctl.internalError(c, err)
	}

	data := fiber.Map{
		"identity":   auth.IdentityFromCtx(c),
		"categories": categories,
		"tags":       tags,
	}

	if c.Params("id") != "" {
		id, err := paramID(c)
		if err != nil {
			return c.Redirect("/admin/articles", fiber.StatusSeeOther)
		}
		article, err := ctl.Articles.GetByID(c.Context(), id)
		if err != nil {
			return c.Redirect("/admin/articles", fiber.StatusSeeOther)
		}
		data["article"] = article

		selected := make([]int64, 0, len(article.Tags))
		for _, tag := range article.Tags {
			selected = append(selected, tag.ID)
		}
		data["selected_tags"] = selected
	}

	return c.Render("admin/article_form", data)
}

func (ctl *Controller) CreateArticle(c *fiber.Ctx) error {
	title := c.FormValue("title")
	content := c.FormValue("content")
	categoryID, _ := strconv.ParseInt(c.FormValue("category_id"), 10, 64)

	if title == "" || content == "" || categoryID == 0 {
		return ctl.ArticleForm(c)
	}

	identity := auth.IdentityFromCtx(c)

	article, err := ctl.Articles.Create(c.Context(), &cms.Article{
		Title:         title,
		Content:       content,
		Published:     formBool(c, "published"),
		FeaturedImage: c.FormValue("featured_image"),
		CategoryID:    categoryID,
		AuthorID:      identity.ID,
	})
	if err != nil {
		return ctl.internalError(c, err)
	}

	if err := ctl.Articles.SetTags(c.Context(), article.ID, formInt64List(c, "tags")); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/articles", fiber.StatusSeeOther)
}

func (ctl *Controller) UpdateArticle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/articles", fiber.StatusSeeOther)
	}

	article, err := ctl.Articles.GetByID(c.Context(), id)
	if err != nil {
		return c.Redirect("/admin/articles", fiber.StatusSeeOther)
	}

	title := c.FormValue("title")
	content := c.FormValue("content")
	categoryID, _ := strconv.ParseInt(c.FormValue("category_id"), 10, 64)

	if title == "" || content == "" || categoryID == 0 {
		return ctl.ArticleForm(c)
	}

	article.Title = title
	article.Content = content
	article.Published = formBool(c, "published")
	article.FeaturedImage = c.FormValue("featured_image")
	article.CategoryID = categoryID

	if err := ctl.Articles.Update(c.Context(), article); err != nil {
		return ctl.internalError(c, err)
	}

	if err := ctl.Articles.SetTags(c.Context(), article.ID, formInt64List(c, "tags")); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/articles", fiber.StatusSeeOther)
}

func (ctl *Controller) DeleteArticle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/admin/articles", fiber.StatusSeeOther)
	}

	if err := ctl.Articles.Delete(c.Context(), id); err != nil {
		return ctl.internalError(c, err)
	}

	return c.Redirect("/admin/articles", fiber.StatusSeeOther)
}
