package router_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/renderkit/core/handler"
	"github.com/dmitrymomot/renderkit/core/response"
	"github.com/dmitrymomot/renderkit/core/router"
)

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestStaticRoutes(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.String("root")
	})
	r.Get("/users", func(ctx *router.Context) handler.Response {
		return response.String("users")
	})
	r.Post("/users", func(ctx *router.Context) handler.Response {
		return response.StringWithStatus("created", http.StatusCreated)
	})

	rec := serve(r, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "root", rec.Body.String())

	rec = serve(r, http.MethodGet, "/users")
	assert.Equal(t, "users", rec.Body.String())

	rec = serve(r, http.MethodPost, "/users")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouteParams(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/users/{id}/posts/{postID}", func(ctx *router.Context) handler.Response {
		return response.String(ctx.Param("id") + ":" + ctx.Param("postID"))
	})

	rec := serve(r, http.MethodGet, "/users/42/posts/7")
	assert.Equal(t, "42:7", rec.Body.String())
}

func TestStaticBeatsParam(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
		return response.String("param:" + ctx.Param("id"))
	})
	r.Get("/users/me", func(ctx *router.Context) handler.Response {
		return response.String("me")
	})

	assert.Equal(t, "me", serve(r, http.MethodGet, "/users/me").Body.String())
	assert.Equal(t, "param:42", serve(r, http.MethodGet, "/users/42").Body.String())
}

func TestWildcard(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/static/*", func(ctx *router.Context) handler.Response {
		return response.String(ctx.Param("*"))
	})

	assert.Equal(t, "css/site.css", serve(r, http.MethodGet, "/static/css/site.css").Body.String())
	assert.Equal(t, "", serve(r, http.MethodGet, "/static").Body.String())
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/known", func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})

	rec := serve(r, http.MethodGet, "/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/users", func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})
	r.Post("/users", func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})

	rec := serve(r, http.MethodDelete, "/users")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	r := router.New[*router.Context]()
	r.Use(mw("first"), mw("second"))
	r.Get("/", func(ctx *router.Context) handler.Response {
		order = append(order, "handler")
		return response.String("ok")
	})

	serve(r, http.MethodGet, "/")
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestUseAfterRoutesPanics(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})
	assert.Panics(t, func() {
		r.Use(func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return next
		})
	})
}

func TestWithScopesMiddleware(t *testing.T) {
	t.Parallel()

	mw := func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
		return func(ctx *router.Context) handler.Response {
			ctx.SetValue("scoped", "yes")
			return next(ctx)
		}
	}

	read := func(ctx *router.Context) handler.Response {
		v, _ := ctx.Value("scoped").(string)
		if v == "" {
			v = "no"
		}
		return response.String(v)
	}

	r := router.New[*router.Context]()
	r.With(mw).Get("/scoped", read)
	r.Get("/plain", read)

	assert.Equal(t, "yes", serve(r, http.MethodGet, "/scoped").Body.String())
	assert.Equal(t, "no", serve(r, http.MethodGet, "/plain").Body.String())
}

func TestGroup(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Group(func(g router.Router[*router.Context]) {
		g.Get("/a", func(ctx *router.Context) handler.Response {
			return response.String("a")
		})
		g.Get("/b", func(ctx *router.Context) handler.Response {
			return response.String("b")
		})
	})

	assert.Equal(t, "a", serve(r, http.MethodGet, "/a").Body.String())
	assert.Equal(t, "b", serve(r, http.MethodGet, "/b").Body.String())
}

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	var caught error
	r := router.New(
		router.WithErrorHandler(func(ctx *router.Context, err error) {
			caught = err
			ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
		}),
	)
	r.Get("/panic", func(ctx *router.Context) handler.Response {
		panic("boom")
	})

	rec := serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var panicErr router.PanicError
	require.ErrorAs(t, caught, &panicErr)
	assert.Equal(t, "boom", panicErr.Value())
	assert.NotEmpty(t, panicErr.Stack())
}

func TestNilResponse(t *testing.T) {
	t.Parallel()

	var caught error
	r := router.New(
		router.WithErrorHandler(func(ctx *router.Context, err error) {
			caught = err
			ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
		}),
	)
	r.Get("/", func(ctx *router.Context) handler.Response {
		return nil
	})

	serve(r, http.MethodGet, "/")
	assert.ErrorIs(t, caught, router.ErrNilResponse)
}

func TestResponseErrorReachesErrorHandler(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("write failed")
	var caught error
	r := router.New(
		router.WithErrorHandler(func(ctx *router.Context, err error) {
			caught = err
		}),
	)
	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.Error(wantErr)
	})

	serve(r, http.MethodGet, "/")
	assert.ErrorIs(t, caught, wantErr)
}

func TestHTTPErrorStatus(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/invalid", func(ctx *router.Context) handler.Response {
		return response.Error(response.ErrUnprocessableEntity)
	})

	rec := serve(r, http.MethodGet, "/invalid")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInvalidPatternPanics(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	assert.Panics(t, func() {
		r.Get("no-leading-slash", func(ctx *router.Context) handler.Response {
			return response.String("ok")
		})
	})
}

func TestDuplicateParamPanics(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	assert.Panics(t, func() {
		r.Get("/a/{id}/b/{id}", func(ctx *router.Context) handler.Response {
			return response.String("ok")
		})
	})
}

func TestWildcardPositionPanics(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	assert.Panics(t, func() {
		r.Get("/a/*/b", func(ctx *router.Context) handler.Response {
			return response.String("ok")
		})
	})
}

func TestTrailingSlashIsDistinct(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/users", func(ctx *router.Context) handler.Response {
		return response.String("no-slash")
	})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/users").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/users/").Code)
}

// customContext is a stand-in for an application context type.
type customContext struct {
	context.Context
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
}

func (c *customContext) Request() *http.Request              { return c.r }
func (c *customContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *customContext) Param(key string) string             { return c.params[key] }

func (c *customContext) SetValue(key, val any) {
	c.Context = context.WithValue(c.Context, key, val)
}

func TestCustomContextFactory(t *testing.T) {
	t.Parallel()

	r := router.New(
		router.WithContextFactory(func(w http.ResponseWriter, req *http.Request, params map[string]string) *customContext {
			return &customContext{Context: req.Context(), w: w, r: req, params: params}
		}),
	)
	r.Get("/x/{id}", func(ctx *customContext) handler.Response {
		return response.String(ctx.Param("id"))
	})

	assert.Equal(t, "9", serve(r, http.MethodGet, "/x/9").Body.String())
}

func TestCustomContextRequiresFactory(t *testing.T) {
	t.Parallel()

	r := router.New[*customContext]()
	r.Get("/", func(ctx *customContext) handler.Response {
		return response.String("ok")
	})

	// Without a factory the router cannot build a custom context.
	assert.PanicsWithValue(t, router.ErrNoContextFactory, func() {
		serve(r, http.MethodGet, "/")
	})
}
