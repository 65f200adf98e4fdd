package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/renderkit/core/config"
	"github.com/dmitrymomot/renderkit/core/handler"
	"github.com/dmitrymomot/renderkit/core/health"
	"github.com/dmitrymomot/renderkit/core/logger"
	"github.com/dmitrymomot/renderkit/core/router"
	"github.com/dmitrymomot/renderkit/core/server"
	"github.com/dmitrymomot/renderkit/core/templating"
	"github.com/dmitrymomot/renderkit/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(logger.WithDevelopment(cfg.AppName))

	eg, ctx := errgroup.WithContext(ctx)

	// Template source: fail-fast load at startup; when reload is enabled
	// the source swaps to a fresh engine on every file change instead.
	var src templating.Source
	if cfg.Templates.Reload {
		reloader, err := templating.NewReloaderFromConfig(cfg.Templates,
			templating.WithReloadLogger(log.With(logger.Component("templates"))),
		)
		if err != nil {
			log.Error("failed to load templates", logger.Component("templates"), logger.Error(err))
			os.Exit(1)
		}
		src = reloader
		eg.Go(func() error {
			if err := reloader.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	} else {
		src = templating.FromConfig(cfg.Templates)
	}

	r := router.New[*router.Context](
		router.WithLogger[*router.Context](log.With(logger.Component("router"))),
		router.WithMiddleware(
			middleware.RequestID[*router.Context](),
			middleware.LoggingWithLogger[*router.Context](log.With(logger.Component("http.request"))),
			middleware.Templating[*router.Context](src, requestIDGlobal),
		),
	)

	// Health check endpoints
	r.Get("/live", health.Liveness)
	r.Get("/ready", health.Readiness[*router.Context](log, templateCheck(src)))

	r.Get("/hello/{name}", helloHandler)

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
	eg.Go(s.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

// helloHandler renders the greeting template with the path parameter.
func helloHandler(ctx *router.Context) handler.Response {
	return templating.Render(ctx, "hello.html", map[string]any{
		"name": ctx.Param("name"),
	})
}

// requestIDGlobal exposes the request ID to every template of the request.
func requestIDGlobal(engine *templating.Engine, ctx *router.Context) {
	if id, ok := middleware.GetRequestID(ctx); ok {
		engine.SetGlobal("request_id", id)
	}
}

// templateCheck reports readiness as long as the template set is non-empty.
func templateCheck(src templating.Source) func(context.Context) error {
	return func(context.Context) error {
		if len(src.Engine().Templates()) == 0 {
			return templating.ErrNoTemplates
		}
		return nil
	}
}
