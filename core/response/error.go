package response

import (
	"net/http"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// Error defers err to the router's error handler: the returned Response
// writes nothing and simply surfaces the error from the write step.
func Error(err error) handler.Response {
	return func(http.ResponseWriter, *http.Request) error {
		return err
	}
}
