package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/renderkit/core/handler"
	"github.com/dmitrymomot/renderkit/core/logger"
	"github.com/dmitrymomot/renderkit/core/response"
)

// Readiness runs the given dependency checks in order and answers "READY"
// when all pass. The first failure is logged and turns into a 503 so load
// balancers stop routing traffic here.
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
