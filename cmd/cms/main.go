package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/django/v3"
	cms "github.com/goliatone/go-cms"
	"github.com/goliatone/go-cms/admin"
	"github.com/goliatone/go-cms/api"
	"github.com/goliatone/go-cms/auth"
	"github.com/goliatone/go-cms/repository"
)

func main() {
	cfg, err := cms.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cms.NewZapLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal: %v", err)
		os.Exit(1)
	}
}

func run(cfg cms.Config, logger cms.Logger) error {
	db, err := repository.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := repository.CreateSchema(ctx, db); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	seeded, err := repository.SeedAdmin(ctx, db, cfg)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if seeded != nil {
		logger.Info("seeded initial superuser %q", seeded.Username)
	}

	users := repository.NewUsers(db)
	categories := repository.NewCategories(db)
	articles := repository.NewArticles(db)
	tags := repository.NewTags(db)
	products := repository.NewProducts(db)
	comments := repository.NewComments(db)

	tokens, err := auth.NewTokenService(cfg, logger)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}

	authenticator := auth.NewAuthenticator(users, tokens).WithLogger(logger)
	resolver := auth.NewResolver(tokens, users, logger)
	mw := auth.NewMiddleware(resolver, cfg.CookieName, "/admin/login", logger)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("upload dir: %w", err)
	}

	engine := django.New(cfg.TemplatesDir, ".html")

	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "cms",
	})

	app.Static("/media", cfg.UploadDir)
	app.Static("/static", cfg.StaticDir)

	app.Get("/", mw.WebSession(), func(c *fiber.Ctx) error {
		recent, err := articles.Recent(c.Context(), 10)
		if err != nil {
			logger.Error("index: %v", err)
			return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{})
		}
		return c.Render("index", fiber.Map{
			"identity": auth.IdentityFromCtx(c),
			"articles": recent,
		})
	})

	api.Register(app.Group("/api"), &api.Controller{
		Auth:       authenticator,
		Middleware: mw,
		Users:      users,
		Categories: categories,
		Articles:   articles,
		Tags:       tags,
		Products:   products,
		Comments:   comments,
		UploadDir:  cfg.UploadDir,
		Logger:     logger,
	})

	admin.Register(app.Group("/admin"), &admin.Controller{
		Auth:       authenticator,
		Middleware: mw,
		Users:      users,
		Categories: categories,
		Articles:   articles,
		Tags:       tags,
		Products:   products,
		Comments:   comments,
		CookieName: cfg.CookieName,
		Logger:     logger,
	})

	logger.Info("listening on %s", cfg.Address)
	return app.Listen(cfg.Address)
}
