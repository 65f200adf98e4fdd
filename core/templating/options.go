package templating

import (
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// Option configures template loading.
type Option func(*configOptions)

type configOptions struct {
	setName    string
	extensions []string
	globals    map[string]any
	filters    map[string]pongo2.FilterFunction
}

func newConfigOptions(opts []Option) *configOptions {
	cfg := &configOptions{setName: "renderkit"}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// matchExtension reports whether a file passes the extension filter.
// An empty filter accepts every file.
func (c *configOptions) matchExtension(file string) bool {
	if len(c.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(file))
	for _, allowed := range c.extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// WithSetName names the underlying pongo2 template set (useful in error messages).
func WithSetName(name string) Option {
	return func(cfg *configOptions) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.setName = name
		}
	}
}

// WithExtensions restricts loading to files with the given extensions,
// e.g. WithExtensions(".html", ".txt"). Without it, every matched file loads.
func WithExtensions(exts ...string) Option {
	return func(cfg *configOptions) {
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			cfg.extensions = append(cfg.extensions, ext)
		}
	}
}

// WithGlobals seeds context values available to every rendered template.
func WithGlobals(globals map[string]any) Option {
	return func(cfg *configOptions) {
		if len(globals) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(globals))
		}
		for key, value := range globals {
			cfg.globals[key] = value
		}
	}
}

// WithFilters registers custom pongo2 filters before templates are parsed.
// A filter whose name is already registered replaces the existing one; pongo2
// keeps one process-wide filter registry, so the replacement is global.
func WithFilters(filters map[string]pongo2.FilterFunction) Option {
	return func(cfg *configOptions) {
		if len(filters) == 0 {
			return
		}
		if cfg.filters == nil {
			cfg.filters = make(map[string]pongo2.FilterFunction, len(filters))
		}
		for name, fn := range filters {
			cfg.filters[strings.TrimSpace(name)] = fn
		}
	}
}
