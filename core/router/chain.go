package router

import "github.com/dmitrymomot/renderkit/core/handler"

// chain wraps endpoint in the given middleware, first element outermost.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		endpoint = middlewares[i](endpoint)
	}
	return endpoint
}
