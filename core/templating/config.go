package templating

import (
	"fmt"
	"path/filepath"
)

// Config holds template loading configuration with environment variable support.
type Config struct {
	// Dir is the template root directory, used when Glob is empty.
	Dir string `env:"TEMPLATES_DIR" envDefault:"templates"`

	// Glob overrides Dir with an explicit pattern, e.g. "templates/**/*.html".
	Glob string `env:"TEMPLATES_GLOB" envDefault:""`

	// Extensions filters loaded files by extension, e.g. ".html,.txt".
	Extensions []string `env:"TEMPLATES_EXTENSIONS" envSeparator:","`

	// Reload enables filesystem watching with automatic re-parsing (dev only).
	Reload bool `env:"TEMPLATES_RELOAD" envDefault:"false"`
}

// NewFromConfig creates an engine from configuration.
// Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	combined := make([]Option, 0, len(opts)+1)
	if len(cfg.Extensions) > 0 {
		combined = append(combined, WithExtensions(cfg.Extensions...))
	}
	combined = append(combined, opts...)

	if cfg.Glob != "" {
		return Load(cfg.Glob, combined...)
	}
	return LoadDirectory(cfg.Dir, combined...)
}

// FromConfig is the fail-fast variant of NewFromConfig for process startup:
// any error is printed to standard output and the process exits non-zero.
func FromConfig(cfg Config, opts ...Option) *Engine {
	engine, err := NewFromConfig(cfg, opts...)
	if err != nil {
		fmt.Printf("Parsing error(s): %v\n", err)
		exitFn(1)
	}
	return engine
}

// NewReloaderFromConfig creates a watching source from configuration. The
// watch root follows whatever the config actually loads: the fixed directory
// prefix of Glob when a pattern is set, Dir otherwise.
func NewReloaderFromConfig(cfg Config, opts ...ReloaderOption) (*Reloader, error) {
	return NewReloader(cfg.watchRoot(),
		func() (*Engine, error) { return NewFromConfig(cfg) },
		opts...,
	)
}

// watchRoot resolves the directory a reloader should watch for this config.
func (c Config) watchRoot() string {
	if c.Glob == "" {
		return c.Dir
	}
	base, _ := splitGlob(filepath.ToSlash(c.Glob))
	return base
}
