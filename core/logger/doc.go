// Package logger provides structured logging utilities built on Go's standard
// slog package: a factory with environment presets and attribute helpers for
// common logging patterns.
//
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// Attribute helpers return an empty slog.Attr for zero values (nil error,
// empty string), which slog drops silently, so call sites never need nil
// checks.
package logger
