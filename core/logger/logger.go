package logger

import (
	"io"
	"log/slog"
	"os"
)

// format selects the slog handler implementation.
type format int

const (
	formatText format = iota
	formatJSON
)

type config struct {
	level  slog.Level
	format format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSONFormatter emits records as JSON (the production default).
func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = formatJSON
	}
}

// WithTextFormatter emits records as human-readable text.
func WithTextFormatter() Option {
	return func(c *config) {
		c.format = formatText
	}
}

// WithOutput directs records to the given writer instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr attaches attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level, tagged with the app name.
func WithDevelopment(appName string) Option {
	return func(c *config) {
		c.format = formatText
		c.level = slog.LevelDebug
		if appName != "" {
			c.attrs = append(c.attrs, slog.String("app", appName))
		}
	}
}

// WithProduction configures JSON output at info level, tagged with the app name.
func WithProduction(appName string) Option {
	return func(c *config) {
		c.format = formatJSON
		c.level = slog.LevelInfo
		if appName != "" {
			c.attrs = append(c.attrs, slog.String("app", appName))
		}
	}
}

// New creates a slog.Logger from the given options.
// Defaults to text output at info level on stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var h slog.Handler
	switch cfg.format {
	case formatJSON:
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	default:
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}

	return slog.New(h)
}
