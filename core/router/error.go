package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/renderkit/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrNilResponse      = errors.New("nil response")
	ErrInvalidPattern   = errors.New("invalid route path pattern")

	ErrWildcardPosition = errors.New("wildcard must be the last pattern segment")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
	ErrParamConflict    = errors.New("conflicting parameter name at the same position")
)

// statusCode is implemented by errors that know their HTTP status,
// such as response.HTTPError.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler answers with the error text in plain form. Routing
// sentinels map to their statuses, errors carrying a StatusCode use it,
// anything else is a 500. A response that already started is left alone.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	var status int
	var sc statusCode
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	case errors.As(err, &sc):
		status = sc.StatusCode()
	default:
		status = http.StatusInternalServerError
	}

	http.Error(w, err.Error(), status)
}

// PanicError gives error handlers access to a recovered panic's value and
// the stack captured where it happened.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.value) }
func (e *panicError) Value() any    { return e.value }
func (e *panicError) Stack() []byte { return e.stack }

// Unwrap exposes the panic value to errors.Is/As when it was an error.
func (e *panicError) Unwrap() error {
	err, _ := e.value.(error)
	return err
}
