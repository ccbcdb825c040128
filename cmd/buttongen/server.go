package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/document"
	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/render/template"
	"github.com/goliatone/go-buttongen/pkg/render/template/gotemplate"
)

func runServe(ctx context.Context, _ *environment, flags *pflag.FlagSet, args []string) error {
	if len(args) != 0 {
		return errors.New("serve: unexpected arguments")
	}
	settings, logger, store, err := setup(flags)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var pages template.TemplateRenderer
	if settings.Pages != "" {
		engine, err := gotemplate.New(
			gotemplate.WithFS(os.DirFS(settings.Pages)),
			gotemplate.WithWidgets(store),
			gotemplate.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		pages = engine
	}

	app := newServer(store, pages, logger)
	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Warn("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("serving widgets", zap.String("addr", settings.Addr), zap.String("widgets", settings.Widgets))
	return app.Listen(settings.Addr)
}

// newServer exposes widget fragments and, when pages is non-nil, whole pages.
//
//	GET /healthz
//	GET /widgets/:kind          names of the declared widgets of kind
//	GET /widgets/:kind/:name    the rendered widget fragment
//	GET /pages/*                a rendered page template
func newServer(store *document.Store, pages template.TemplateRenderer, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).SendString(err.Error())
		},
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/widgets/:kind", func(c *fiber.Ctx) error {
		kind, err := document.ParseKind(c.Params("kind"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		names := store.Names(kind)
		if names == nil {
			names = []string{}
		}
		return c.JSON(fiber.Map{"data": names})
	})

	app.Get("/widgets/:kind/:name", func(c *fiber.Ctx) error {
		kind, err := document.ParseKind(c.Params("kind"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		el, err := store.Render(kind, c.Params("name"))
		if errors.Is(err, document.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		if err != nil {
			return err
		}
		return adaptor.HTTPHandler(markup.Handler(el))(c)
	})

	app.Get("/pages/*", func(c *fiber.Ctx) error {
		name := strings.Trim(c.Params("*"), "/")
		if pages == nil || name == "" {
			return fiber.ErrNotFound
		}
		html, err := pages.RenderTemplate(name, pageData(c))
		if err != nil {
			if errors.Is(err, template.ErrTemplateNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return err
		}
		c.Type("html", "utf-8")
		return c.SendString(html)
	})

	return app
}

// pageData exposes the query string to page templates as `query`.
func pageData(c *fiber.Ctx) map[string]any {
	query := make(map[string]any)
	for key, value := range c.Queries() {
		query[key] = value
	}
	return map[string]any{"query": query}
}
