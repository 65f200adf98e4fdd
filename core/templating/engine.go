package templating

import (
	"errors"
	"fmt"
	"io"
	"maps"

	"github.com/flosch/pongo2/v6"
)

var (
	// ErrTemplateNotFound is returned when rendering a name that was never loaded.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrRenderFailed wraps template execution failures.
	ErrRenderFailed = errors.New("template render failed")
)

// Source provides the base engine a middleware clones per request.
// *Engine is itself a Source; Reloader swaps engines behind the same interface.
type Source interface {
	Engine() *Engine
}

// Engine holds a set of parsed pongo2 templates together with a mutable
// overlay of globals and per-clone template overrides.
//
// The parsed template map is shared between an engine and all of its clones
// and is never mutated after loading. Everything a transformer may touch
// (globals, overrides) lives in the clone, so concurrent requests cannot
// observe each other's changes.
type Engine struct {
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template // shared, read-only after load
	globals   pongo2.Context              // owned by this clone
	overrides map[string]*pongo2.Template // owned by this clone, lazily allocated
}

// Engine implements Source by returning itself.
func (e *Engine) Engine() *Engine { return e }

// Clone returns an independent copy of the engine. The parsed templates are
// shared by reference; globals and overrides are copied so mutations on the
// clone never leak back to the parent or to sibling clones.
func (e *Engine) Clone() *Engine {
	clone := &Engine{
		set:       e.set,
		templates: e.templates,
		globals:   maps.Clone(e.globals),
	}
	if clone.globals == nil {
		clone.globals = make(pongo2.Context)
	}
	if len(e.overrides) > 0 {
		clone.overrides = maps.Clone(e.overrides)
	}
	return clone
}

// SetGlobal sets a context value visible to every template rendered by this
// engine (and future clones of it).
func (e *Engine) SetGlobal(key string, value any) {
	if e.globals == nil {
		e.globals = make(pongo2.Context)
	}
	e.globals[key] = value
}

// Global returns the global value for key.
func (e *Engine) Global(key string) (any, bool) {
	v, ok := e.globals[key]
	return v, ok
}

// AddTemplate parses content and registers it under name on this engine only,
// shadowing any loaded template with the same name. Returns the parse error.
func (e *Engine) AddTemplate(name, content string) error {
	tpl, err := e.set.FromString(content)
	if err != nil {
		return fmt.Errorf("parse template %q: %w", name, err)
	}
	if e.overrides == nil {
		e.overrides = make(map[string]*pongo2.Template)
	}
	e.overrides[name] = tpl
	return nil
}

// Has reports whether a template with the given name is available.
func (e *Engine) Has(name string) bool {
	if _, ok := e.overrides[name]; ok {
		return true
	}
	_, ok := e.templates[name]
	return ok
}

// Templates returns the names of all loaded templates, overrides included.
func (e *Engine) Templates() []string {
	names := make([]string, 0, len(e.templates)+len(e.overrides))
	for name := range e.templates {
		if _, shadowed := e.overrides[name]; !shadowed {
			names = append(names, name)
		}
	}
	for name := range e.overrides {
		names = append(names, name)
	}
	return names
}

// Render executes the named template with the given data merged over the
// engine's globals and returns the rendered output.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}

	out, err := tpl.Execute(e.renderContext(data))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrRenderFailed, name, err)
	}
	return out, nil
}

// RenderWriter executes the named template directly to w.
// Prefer Render for HTTP responses: buffering prevents partial output on error.
func (e *Engine) RenderWriter(name string, data map[string]any, w io.Writer) error {
	tpl, err := e.lookup(name)
	if err != nil {
		return err
	}

	if err := tpl.ExecuteWriter(e.renderContext(data), w); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrRenderFailed, name, err)
	}
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	if tpl, ok := e.overrides[name]; ok {
		return tpl, nil
	}
	if tpl, ok := e.templates[name]; ok {
		return tpl, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}

// renderContext merges data over the engine globals into a fresh context.
func (e *Engine) renderContext(data map[string]any) pongo2.Context {
	merged := make(pongo2.Context, len(e.globals)+len(data))
	merged.Update(e.globals)
	if len(data) > 0 {
		merged.Update(pongo2.Context(data))
	}
	return merged
}
