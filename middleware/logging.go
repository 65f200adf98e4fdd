package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/renderkit/core/handler"
	"github.com/dmitrymomot/renderkit/core/logger"
)

// LoggingConfig tunes the request logging middleware.
type LoggingConfig struct {
	// Skip bypasses the middleware when it returns true for a request.
	Skip func(ctx handler.Context) bool
	// Logger receives the records; slog.Default() when nil.
	Logger *slog.Logger
	// LogLevel for normal request records (default info). Errors escalate
	// to error level, slow requests to warn.
	LogLevel slog.Level
	// SlowRequestThreshold marks requests worth a warning (default 5s).
	SlowRequestThreshold time.Duration
	// Component tags every record (default "http").
	Component string
}

// Logging records one line when a request starts and one when its response
// is written, including status, size, and duration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger is Logging writing to the given logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig is Logging with custom configuration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			requestID, _ := GetRequestID(ctx)
			start := time.Now()

			cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "HTTP request started",
				logger.Component(cfg.Component),
				logger.Event("request"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.Query(req.URL.RawQuery),
				logger.RemoteAddr(req.RemoteAddr),
				logger.RequestID(requestID),
			)

			resp := next(ctx)

			// The completion record is emitted from the write step so it
			// can see the real status, size, and any write error.
			return func(w http.ResponseWriter, r *http.Request) error {
				tracked := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				err := resp(tracked, r)
				elapsed := time.Since(start)

				level := cfg.LogLevel
				switch {
				case err != nil || tracked.statusCode >= http.StatusInternalServerError:
					level = slog.LevelError
				case elapsed > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
				}

				cfg.Logger.LogAttrs(r.Context(), level, "HTTP request completed",
					logger.Component(cfg.Component),
					logger.Event("response"),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(tracked.statusCode),
					logger.BytesOut(int64(tracked.size)),
					logger.Duration(elapsed),
					logger.RequestID(requestID),
					logger.Error(err),
				)
				return err
			}
		}
	}
}
