package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// Option configures a Router at construction time.
type Option[C handler.Context] func(*mux[C])

// WithErrorHandler replaces the default plain-text error responder.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.onError = h
		}
	}
}

// WithMiddleware seeds the router-wide middleware stack.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(m *mux[C]) {
		m.middlewares = append(m.middlewares, middlewares...)
	}
}

// WithContextFactory tells the router how to build the context type C.
// Required for any context type other than *Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, map[string]string) C) Option[C] {
	return func(m *mux[C]) {
		m.makeContext = f
	}
}

// WithLogger sets the logger used for panics that arrive after the response
// has started. Discarded by default.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.log = logger
		}
	}
}
