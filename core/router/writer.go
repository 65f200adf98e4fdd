package router

import "net/http"

// responseWriter remembers whether anything was sent, so the error path can
// tell when the response is no longer its to write. A second WriteHeader is
// swallowed rather than triggering net/http's superfluous-call warning.
type responseWriter struct {
	http.ResponseWriter
	code  int
	wrote bool
}

func (w *responseWriter) WriteHeader(code int) {
	if w.wrote {
		return
	}
	w.code = code
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Written reports whether a status line has gone out.
func (w *responseWriter) Written() bool { return w.wrote }

// Status returns the status code sent, or 0 before any write.
func (w *responseWriter) Status() int { return w.code }
