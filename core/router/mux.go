package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// mux implements Router on top of the segment tree. Inline muxes created by
// With and Group share the root tree and layer extra middleware onto the
// routes they register; only the root mux owns router-wide middleware.
type mux[C handler.Context] struct {
	tree        *node[C]
	middlewares []handler.Middleware[C]
	onError     handler.ErrorHandler[C]
	makeContext func(http.ResponseWriter, *http.Request, map[string]string) C
	log         *slog.Logger

	parent *mux[C]
	inline bool
	sealed bool // a route has been registered; Use is no longer allowed
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		tree:    &node[C]{},
		onError: defaultErrorHandler[C],
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.makeContext == nil {
		m.makeContext = defaultContextFactory[C]
	}
	return m
}

// defaultContextFactory builds *Context; any other context type needs an
// explicit WithContextFactory and panics here otherwise.
func defaultContextFactory[C handler.Context](w http.ResponseWriter, r *http.Request, params map[string]string) C {
	var zero C
	if _, ok := any(zero).(*Context); !ok {
		panic(ErrNoContextFactory)
	}
	return any(newContext(w, r, params)).(C)
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := &responseWriter{ResponseWriter: w}
	params := make(map[string]string)
	match := m.tree.find(splitPath(requestPath(r)), params)
	ctx := m.makeContext(ww, r, params)

	defer func() {
		if p := recover(); p != nil {
			m.recovered(ctx, ww, r, p)
		}
	}()

	if match == nil {
		m.onError(ctx, ErrNotFound)
		return
	}

	endpoint, ok := match.endpoints[r.Method]
	if !ok {
		m.rejectMethod(ctx, ww, match)
		return
	}

	if len(m.middlewares) > 0 {
		endpoint = chain(m.middlewares, endpoint)
	}

	resp := endpoint(ctx)
	if resp == nil {
		m.onError(ctx, ErrNilResponse)
		return
	}
	if err := resp(ww, r); err != nil {
		m.onError(ctx, err)
	}
}

// requestPath prefers RawPath so encoded segments keep their encoding.
func requestPath(r *http.Request) string {
	if r.URL.RawPath != "" {
		return r.URL.RawPath
	}
	if r.URL.Path == "" {
		return "/"
	}
	return r.URL.Path
}

// rejectMethod answers 405 with an Allow header listing the methods the
// matched route does accept.
func (m *mux[C]) rejectMethod(ctx C, ww *responseWriter, match *node[C]) {
	allowed := make([]string, 0, len(match.endpoints))
	for method := range match.endpoints {
		allowed = append(allowed, method)
	}
	slices.Sort(allowed)

	if !ww.Written() {
		ww.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	m.onError(ctx, ErrMethodNotAllowed)
}

// recovered converts a panic into an error response when the response is
// still unwritten; otherwise the panic can only be logged.
func (m *mux[C]) recovered(ctx C, ww *responseWriter, r *http.Request, p any) {
	err := &panicError{value: p, stack: debug.Stack()}

	if ww.Written() {
		m.log.Error("panic after response written",
			slog.Any("value", err.value),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("stack", string(err.stack)),
		)
		return
	}
	m.onError(ctx, err)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C])     { m.route(http.MethodGet, pattern, h) }
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C])    { m.route(http.MethodPost, pattern, h) }
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C])     { m.route(http.MethodPut, pattern, h) }
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C])  { m.route(http.MethodDelete, pattern, h) }
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C])   { m.route(http.MethodPatch, pattern, h) }
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C])    { m.route(http.MethodHead, pattern, h) }
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) { m.route(http.MethodOptions, pattern, h) }

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.sealed {
		panic("renderkit: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		tree:        m.tree,
		middlewares: middlewares,
		onError:     m.onError,
		makeContext: m.makeContext,
		log:         m.log,
		parent:      m,
		inline:      true,
	}
}

func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	sub := m.With()
	if fn != nil {
		fn(sub)
	}
	return sub
}

// route inserts a handler into the shared tree. For inline muxes the
// middleware accumulated along the With/Group chain is baked into the
// handler now; the root stack is applied at serve time instead.
func (m *mux[C]) route(method, pattern string, fn handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	h := fn
	if m.inline {
		h = chain(m.inlineMiddlewares(), fn)
	} else {
		m.sealed = true
	}

	m.tree.insert(method, pattern, h)
}

// inlineMiddlewares collects middleware from the inline chain, outermost
// ancestor first, stopping at the root mux.
func (m *mux[C]) inlineMiddlewares() []handler.Middleware[C] {
	var stack []handler.Middleware[C]
	for curr := m; curr != nil && curr.inline; curr = curr.parent {
		stack = append(slices.Clone(curr.middlewares), stack...)
	}
	return stack
}
