// Package renderkit is a toolkit for serving server-rendered HTML from Go web
// services. It pairs a small type-safe HTTP framework with a pongo2 template
// engine integration: templates are parsed once at startup, each request works
// against its own clone of the compiled set, and render results are converted
// into HTTP responses with safe error handling.
//
// # Package Organization
//
//	github.com/dmitrymomot/renderkit/core/config     - Type-safe environment variable loading
//	github.com/dmitrymomot/renderkit/core/handler    - Type-safe HTTP handler abstractions
//	github.com/dmitrymomot/renderkit/core/health     - HTTP handlers for service health monitoring
//	github.com/dmitrymomot/renderkit/core/logger     - Structured logging built on slog
//	github.com/dmitrymomot/renderkit/core/response   - HTTP response utilities (plain text, HTML, JSON)
//	github.com/dmitrymomot/renderkit/core/router     - HTTP router with middleware and typed contexts
//	github.com/dmitrymomot/renderkit/core/server     - HTTP server with graceful shutdown
//	github.com/dmitrymomot/renderkit/core/templating - pongo2 template loading, cloning, and rendering
//	github.com/dmitrymomot/renderkit/middleware      - Request ID, logging, and templating middleware
//
// # Quick Start
//
// Load templates at startup, install the middleware, and render from handlers:
//
//	engine := templating.FromDirectory("templates")
//
//	r := router.New[*router.Context]()
//	r.Use(middleware.Templating[*router.Context](engine))
//	r.Get("/hello/{name}", func(ctx *router.Context) handler.Response {
//		return templating.Render(ctx, "hello.html", map[string]any{
//			"name": ctx.Param("name"),
//		})
//	})
//
//	server.Run(context.Background(), ":8080", r)
//
// FromDirectory follows a fail-fast policy: a template that does not parse
// stops the process before it accepts traffic. During development, wrap the
// loader in a templating.Reloader to re-parse on file changes instead.
//
// See cmd/server for a complete wired application.
package renderkit
