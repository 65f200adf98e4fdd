// Package middleware provides HTTP middleware for the generic router:
// per-request template engine injection, request IDs, and structured
// request/response logging.
//
// Each middleware follows the same conventions: a zero-config constructor,
// a WithConfig variant taking a config struct with an optional Skip
// predicate, and a panic at construction time when a required dependency
// is missing. Values injected into the request context are read back with
// the matching getter (templating.FromContext, GetRequestID).
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.Templating[*router.Context](engine),
//	)
package middleware
