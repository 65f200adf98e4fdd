package health

import (
	"github.com/dmitrymomot/renderkit/core/handler"
	"github.com/dmitrymomot/renderkit/core/response"
)

// Liveness answers "ALIVE" with 200 whenever the process can serve at all.
// It checks nothing else; use Readiness for dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// NoContent answers 204 with no body, for probes that only read the status.
func NoContent[C handler.Context](C) handler.Response {
	return response.NoContent()
}
