package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/renderkit/core/handler"
)

type requestIDContextKey struct{}

// RequestIDConfig tunes request ID assignment.
type RequestIDConfig struct {
	// Skip bypasses the middleware when it returns true for a request.
	Skip func(ctx handler.Context) bool
	// Generator produces new IDs; a random UUID by default.
	Generator func() string
	// HeaderName is the response (and, with UseExisting, request) header
	// carrying the ID. Defaults to "X-Request-ID".
	HeaderName string
	// UseExisting trusts an incoming ID instead of always generating one.
	UseExisting bool
}

// RequestID tags every request with a fresh UUID, exposed through
// GetRequestID and echoed in the response header.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig is RequestID with custom configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	header := cfg.HeaderName
	if header == "" {
		header = "X-Request-ID"
	}
	generate := cfg.Generator
	if generate == nil {
		generate = uuid.NewString
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			var id string
			if cfg.UseExisting {
				id = ctx.Request().Header.Get(header)
			}
			if id == "" {
				id = generate()
			}

			ctx.SetValue(requestIDContextKey{}, id)
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(header, id)
				return resp(w, r)
			}
		}
	}
}

// GetRequestID returns the request's ID and whether the middleware set one.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
