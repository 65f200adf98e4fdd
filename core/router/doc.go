// Package router provides a generic HTTP router with typed request contexts,
// middleware chaining, and route grouping.
//
// # Basic Usage
//
//	r := router.New[*router.Context]()
//
//	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
//		id := ctx.Param("id")
//		return response.String("user " + id)
//	})
//
//	http.ListenAndServe(":8080", r)
//
// # Path Parameters
//
// Patterns use "{name}" for named parameters and a trailing "*" to match the
// rest of the path. Static segments always win over parameters, and parameters
// win over wildcards.
//
//	r.Get("/files/*", func(ctx *router.Context) handler.Response {
//		return response.String(ctx.Param("*"))
//	})
//
// # Middleware
//
// Middleware registered with Use applies to every route. With and Group attach
// middleware to a subset of routes:
//
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Group(func(admin router.Router[*router.Context]) {
//		admin.Use(authMiddleware)
//		admin.Get("/admin", adminHandler)
//	})
//
// # Custom Contexts
//
// Routers are generic over any handler.Context implementation. Provide a
// context factory when using a custom type:
//
//	r := router.New[*AppContext](
//		router.WithContextFactory[*AppContext](newAppContext),
//	)
//
// Panics in handlers are recovered, wrapped in a PanicError carrying the stack
// trace, and passed to the router's error handler.
package router
