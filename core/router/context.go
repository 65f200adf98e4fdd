package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the default request context. It keeps its own context.Context
// alongside the request so SetValue stays cheap, and rewraps the request on
// demand so handlers reading Request().Context() observe the same values.
type Context struct {
	ctx    context.Context
	w      http.ResponseWriter
	req    *http.Request
	params map[string]string
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{ctx: r.Context(), w: w, req: r, params: params}
}

// SetValue attaches a request-scoped value retrievable through Value.
func (c *Context) SetValue(key, val any) {
	c.ctx = context.WithValue(c.ctx, key, val)
	c.req = c.req.WithContext(c.ctx)
}

// Request returns the HTTP request this context was built for.
func (c *Context) Request() *http.Request { return c.req }

// ResponseWriter returns the writer the response will be sent on.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the path parameter captured under key, or "".
func (c *Context) Param(key string) string { return c.params[key] }

// context.Context, delegated to the derived request context.

func (c *Context) Deadline() (time.Time, bool) { return c.ctx.Deadline() }
func (c *Context) Done() <-chan struct{}       { return c.ctx.Done() }
func (c *Context) Err() error                  { return c.ctx.Err() }
func (c *Context) Value(key any) any           { return c.ctx.Value(key) }
