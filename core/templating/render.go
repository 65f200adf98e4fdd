package templating

import (
	"log/slog"

	"github.com/dmitrymomot/renderkit/core/handler"
	"github.com/dmitrymomot/renderkit/core/response"
)

// HTML converts a render result into an HTTP response: a successful render
// becomes a 200 text/html reply, a failed one is logged and converted to a
// generic 500 so a broken template never leaks error details to the client.
//
//	return templating.HTML(engine.Render("profile.html", data))
func HTML(out string, err error) handler.Response {
	if err != nil {
		slog.Error("template render failed", slog.Any("error", err))
		return response.Error(response.ErrInternalServerError.WithError(err))
	}
	return response.HTML(out)
}

// Render looks up the per-request engine from the context, renders the named
// template, and converts the result. Handlers that only render one template
// can return it directly:
//
//	r.Get("/hello/{name}", func(ctx *router.Context) handler.Response {
//		return templating.Render(ctx, "hello.html", map[string]any{
//			"name": ctx.Param("name"),
//		})
//	})
func Render(ctx handler.Context, name string, data map[string]any) handler.Response {
	engine, ok := FromContext(ctx)
	if !ok {
		slog.Error("template render failed: no engine in context",
			slog.String("template", name))
		return response.Error(response.ErrInternalServerError)
	}
	return HTML(engine.Render(name, data))
}
