package middleware

import (
	"github.com/dmitrymomot/renderkit/core/handler"
	"github.com/dmitrymomot/renderkit/core/templating"
)

// Transformer mutates a per-request engine clone before the handler runs,
// e.g. to set request-derived globals or override a template. Each request
// gets its own clone, so transformers never affect other requests.
type Transformer[C handler.Context] func(engine *templating.Engine, ctx C)

// TemplatingConfig configures the templating middleware.
type TemplatingConfig[C handler.Context] struct {
	// Skip bypasses the middleware when it returns true for a request.
	Skip func(ctx handler.Context) bool
	// Source provides the base engine to clone per request (required).
	// Pass the *templating.Engine itself, or a *templating.Reloader in dev.
	Source templating.Source
	// Transformers are applied to the clone in registration order.
	Transformers []Transformer[C]
}

// Templating creates a templating middleware with default configuration.
// For every request it clones the engine, applies the transformers, and
// stores the clone in the request context for templating.FromContext.
func Templating[C handler.Context](src templating.Source, transformers ...Transformer[C]) handler.Middleware[C] {
	return TemplatingWithConfig[C](TemplatingConfig[C]{
		Source:       src,
		Transformers: transformers,
	})
}

// TemplatingWithConfig creates a templating middleware with custom configuration.
func TemplatingWithConfig[C handler.Context](cfg TemplatingConfig[C]) handler.Middleware[C] {
	if cfg.Source == nil {
		panic("templating middleware: template source is required")
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			engine := cfg.Source.Engine().Clone()

			for _, transform := range cfg.Transformers {
				transform(engine, ctx)
			}

			templating.Inject(ctx, engine)

			return next(ctx)
		}
	}
}
