// Package response provides helpers for building handler.Response values:
// plain text, HTML, JSON, raw bytes, empty statuses, and error propagation.
//
// Every helper returns a handler.Response closure, so responses compose with
// the router's error handling: a helper that fails while writing returns the
// error to the router, which forwards it to the configured error handler.
//
//	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
//		user, err := repo.Find(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(response.ErrNotFound.WithError(err))
//		}
//		return response.JSON(user)
//	})
//
// HTTPError carries a status code, a machine-readable code, and optional
// details. ErrorHandler and JSONErrorHandler convert arbitrary errors to
// consistent plain-text or JSON replies and can be plugged into the router
// via router.WithErrorHandler.
package response
