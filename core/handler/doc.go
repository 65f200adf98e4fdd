// Package handler defines the core abstractions shared by the router,
// middleware, and response packages: a type-safe HandlerFunc over a
// request Context, a Response function that writes the HTTP reply, and
// the Middleware and ErrorHandler types that compose around handlers.
//
// The Context interface extends context.Context with access to the
// underlying request, response writer, and URL parameters. SetValue
// stores request-scoped values that middleware injects and downstream
// handlers read back:
//
//	func (c *AppContext) SetValue(key, val any) {
//		ctx := context.WithValue(c.r.Context(), key, val)
//		c.r = c.r.WithContext(ctx)
//	}
//
// Custom context types embed or reimplement this contract to carry
// application-specific state; every generic component in this module is
// parameterized over it.
package handler
