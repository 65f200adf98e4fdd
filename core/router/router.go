package router

import (
	"net/http"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// Router registers handlers against URL patterns and serves HTTP requests
// through them. Patterns use "{name}" segments for path parameters and a
// trailing "*" to capture the rest of the path.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])

	// Use appends router-wide middleware; it must be called before any
	// route is registered.
	Use(middlewares ...handler.Middleware[C])

	// With returns a router whose routes additionally run the given
	// middleware, on top of the router-wide stack.
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Group runs fn against a sub-router sharing this router's tree,
	// scoping middleware added inside fn to the routes it registers.
	Group(fn func(r Router[C])) Router[C]
}

// New creates a Router for the context type C. Using a context type other
// than *Context requires WithContextFactory.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
