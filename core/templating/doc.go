// Package templating integrates the pongo2 template engine (Django/Jinja
// syntax) into the framework's request pipeline.
//
// Templates are parsed once at startup from a glob or directory. The
// fail-fast constructors terminate the process when parsing fails, since a
// web application cannot serve a broken template set:
//
//	engine := templating.FromGlob("templates/**/*.html")
//
// Use the error-returning Load/LoadDirectory variants to handle failures
// yourself. Per request, the templating middleware clones the engine, applies
// registered transformers, and stores the clone in the request context:
//
//	r.Use(middleware.Templating[*router.Context](engine))
//
//	r.Get("/hello/{name}", func(ctx *router.Context) handler.Response {
//		return templating.Render(ctx, "hello.html", map[string]any{
//			"name": ctx.Param("name"),
//		})
//	})
//
// Clones share the immutable parsed templates and carry their own globals and
// template overrides, so per-request mutations never cross requests.
//
// A render failure is logged and converted into a generic 500 response,
// isolating the failing request. For development, Reloader watches the
// template directory and re-parses on change while keeping the last good set
// on errors.
package templating
