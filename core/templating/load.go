package templating

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// ErrNoTemplates is returned when loading matches no files at all.
var ErrNoTemplates = errors.New("no templates matched")

// exitFn terminates the process on fail-fast constructors. Swapped in tests.
var exitFn = os.Exit

// Load parses every file matched by the glob pattern and returns an engine
// holding the compiled set. Patterns support "**" for recursive matching,
// e.g. "templates/**/*.html". Template names are paths relative to the fixed
// directory prefix of the pattern, so "templates/**/*" exposes
// "templates/users/list.html" as "users/list.html".
//
// All parse errors are collected and reported together.
func Load(pattern string, opts ...Option) (*Engine, error) {
	cfg := newConfigOptions(opts)

	base, files, err := globFiles(pattern)
	if err != nil {
		return nil, err
	}
	return load(base, files, cfg)
}

// LoadDirectory parses every template file found under dir, recursively.
// Template names are slash-separated paths relative to dir.
func LoadDirectory(dir string, opts ...Option) (*Engine, error) {
	cfg := newConfigOptions(opts)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk template directory %q: %w", dir, err)
	}
	return load(dir, files, cfg)
}

// FromGlob is the fail-fast variant of Load for process startup: any error is
// printed to standard output and the process exits with a non-zero status.
// There is no partial startup; a broken template set is not served.
func FromGlob(pattern string, opts ...Option) *Engine {
	engine, err := Load(pattern, opts...)
	if err != nil {
		fmt.Printf("Parsing error(s): %v\n", err)
		exitFn(1)
	}
	return engine
}

// FromDirectory is the fail-fast variant of LoadDirectory.
func FromDirectory(dir string, opts ...Option) *Engine {
	engine, err := LoadDirectory(dir, opts...)
	if err != nil {
		fmt.Printf("Parsing error(s): %v\n", err)
		exitFn(1)
	}
	return engine
}

// load parses files into a fresh engine rooted at base.
func load(base string, files []string, cfg *configOptions) (*Engine, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(base)
	if err != nil {
		return nil, fmt.Errorf("template loader for %q: %w", base, err)
	}
	set := pongo2.NewSet(cfg.setName, loader)

	if err := registerFilters(cfg.filters); err != nil {
		return nil, err
	}

	engine := &Engine{
		set:       set,
		templates: make(map[string]*pongo2.Template),
		globals:   make(pongo2.Context),
	}
	for key, value := range cfg.globals {
		engine.globals[key] = value
	}

	var errs []error
	for _, file := range files {
		if !cfg.matchExtension(file) {
			continue
		}

		name, err := filepath.Rel(base, file)
		if err != nil {
			name = file
		}
		name = filepath.ToSlash(name)

		tpl, err := set.FromFile(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse %q: %w", name, err))
			continue
		}
		engine.templates[name] = tpl
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if len(engine.templates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTemplates, base)
	}
	return engine, nil
}

// registerFilters installs user filters into pongo2's registry. Pongo2 keeps
// a single global registry, so a name that is already taken is replaced
// rather than silently kept: the caller's filter always wins.
func registerFilters(filters map[string]pongo2.FilterFunction) error {
	for name, fn := range filters {
		if pongo2.FilterExists(name) {
			if err := pongo2.ReplaceFilter(name, fn); err != nil {
				return fmt.Errorf("replace filter %q: %w", name, err)
			}
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return fmt.Errorf("register filter %q: %w", name, err)
		}
	}
	return nil
}

// globFiles resolves a glob pattern into its fixed base directory and the
// list of matched files. The "**" segment matches any directory depth.
func globFiles(pattern string) (string, []string, error) {
	pattern = filepath.ToSlash(pattern)

	base, rest := splitGlob(pattern)

	if !strings.Contains(rest, "**") {
		matches, err := filepath.Glob(filepath.FromSlash(pattern))
		if err != nil {
			return "", nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		files := matches[:0]
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && !info.IsDir() {
				files = append(files, m)
			}
		}
		if len(files) == 0 {
			return "", nil, fmt.Errorf("%w: %q", ErrNoTemplates, pattern)
		}
		return base, files, nil
	}

	// Recursive pattern: walk the base and match each file's relative path
	// against the full pattern, segment by segment. "**" spans any number of
	// directories, so "dir/**/partials/*.html" only matches files whose
	// parent directory is named "partials".
	patSegments := strings.Split(rest, "/")

	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		ok, err := matchSegments(patSegments, strings.Split(filepath.ToSlash(rel), "/"))
		if err != nil {
			return fmt.Errorf("glob %q: %w", pattern, err)
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return "", nil, fmt.Errorf("%w: %q", ErrNoTemplates, pattern)
	}
	return base, files, nil
}

// matchSegments reports whether path segments satisfy pattern segments.
// A "**" pattern segment matches zero or more path segments; every other
// segment matches a single path segment via filepath.Match.
func matchSegments(pattern, path []string) (bool, error) {
	if len(pattern) == 0 {
		return len(path) == 0, nil
	}
	if pattern[0] == "**" {
		// Try consuming zero path segments first, then one more at a time.
		for skip := 0; skip <= len(path); skip++ {
			ok, err := matchSegments(pattern[1:], path[skip:])
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
	if len(path) == 0 {
		return false, nil
	}
	ok, err := filepath.Match(pattern[0], path[0])
	if err != nil || !ok {
		return false, err
	}
	return matchSegments(pattern[1:], path[1:])
}

// splitGlob separates the fixed directory prefix from the wildcard part.
func splitGlob(pattern string) (base, rest string) {
	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if strings.ContainsAny(seg, "*?[") {
			base = strings.Join(segments[:i], "/")
			rest = strings.Join(segments[i:], "/")
			if base == "" {
				base = "."
			}
			return base, rest
		}
	}
	// No wildcards: the whole pattern is a fixed path.
	return filepath.Dir(pattern), filepath.Base(pattern)
}
