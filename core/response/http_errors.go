package response

import "net/http"

// HTTPError is the error shape the render pipeline speaks: an HTTP status, a
// machine-readable code, a human message, and optional detail values. It is
// a value type; the With* methods copy, so the predefined errors below stay
// untouched.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e HTTPError) Error() string { return e.Message }

// StatusCode satisfies the router's status-carrying error contract.
func (e HTTPError) StatusCode() int { return e.Status }

// WithMessage returns the error with a replaced message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns the error with the given detail map.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns the error with the cause recorded under the "cause"
// detail key. The receiver's detail map is not shared with the result.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

func newHTTPError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

// Predefined errors for the statuses this module actually raises.
var (
	ErrBadRequest          = newHTTPError(http.StatusBadRequest, "bad_request")
	ErrForbidden           = newHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound            = newHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed    = newHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrUnprocessableEntity = newHTTPError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrInternalServerError = newHTTPError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable  = newHTTPError(http.StatusServiceUnavailable, "service_unavailable")
)

var httpErrorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusUnprocessableEntity: ErrUnprocessableEntity,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}
