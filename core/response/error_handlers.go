package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// statusCoder is implemented by errors that carry their own HTTP status.
type statusCoder interface {
	StatusCode() int
}

// toHTTPError normalizes any error into an HTTPError: pass HTTPErrors
// through, honor a StatusCode method, default everything else to 500.
// The original error ends up in the details so logs keep the cause.
func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCoder); ok {
		status = sc.StatusCode()
	}

	base, ok := httpErrorsByStatus[status]
	if !ok {
		if status < 400 || http.StatusText(status) == "" {
			status = http.StatusInternalServerError
		}
		base = newHTTPError(status, "error")
	}
	return base.WithError(err)
}

// ErrorHandler replies to errors with a plain-text body.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := toHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Message, httpErr.Status))
}

// JSONErrorHandler replies to errors with the HTTPError encoded as JSON.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := toHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
