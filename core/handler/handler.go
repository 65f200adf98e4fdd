package handler

import "net/http"

// Response writes one HTTP response: headers and status first, then the body.
// A returned error means the response could not be produced; the router hands
// it to the error handler instead of exposing it to the client.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc turns a request, carried by the context type C, into a Response.
// Separating the two phases lets middleware decorate the write step after the
// handler has already decided what to send.
type HandlerFunc[C Context] func(ctx C) Response

// Middleware decorates a HandlerFunc with behavior that runs around it.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// ErrorHandler renders errors raised anywhere in request processing:
// routing misses, handler errors, recovered panics.
type ErrorHandler[C Context] func(ctx C, err error)
