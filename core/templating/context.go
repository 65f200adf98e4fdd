package templating

import (
	"context"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// engineContextKey is used as a key for storing the engine in request context.
type engineContextKey struct{}

// Inject stores a per-request engine on the context via SetValue.
// The templating middleware calls this for every request; handlers read the
// engine back with FromContext or MustFromContext.
func Inject(ctx handler.Context, engine *Engine) {
	ctx.SetValue(engineContextKey{}, engine)
}

// FromContext retrieves the per-request engine from the context.
// Returns the engine and a boolean indicating whether it was found.
// Works with any context.Context, not just handler.Context.
func FromContext(ctx context.Context) (*Engine, bool) {
	engine, ok := ctx.Value(engineContextKey{}).(*Engine)
	return engine, ok
}

// MustFromContext retrieves the per-request engine or panics when absent.
// Use it in handlers that cannot run without the templating middleware.
func MustFromContext(ctx context.Context) *Engine {
	engine, ok := FromContext(ctx)
	if !ok {
		panic("templating: no engine in context, is the templating middleware installed?")
	}
	return engine
}
