package handler

import (
	"context"
	"net/http"
)

// Context is the per-request view a handler receives. It is a context.Context
// carrying request-scoped values, with access to the underlying request, the
// response writer, and the matched path parameters. router.Context is the
// default implementation; applications embed it to add typed state.
type Context interface {
	context.Context

	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Param returns the path parameter captured under key, or "" when the
	// route declares no such parameter.
	Param(key string) string

	// SetValue attaches a request-scoped value retrievable through Value.
	SetValue(key, val any)
}
