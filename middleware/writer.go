package middleware

import "net/http"

// responseWriter counts what actually went out so the completion log record
// carries the real status and body size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
	wroteHead  bool
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHead {
		return
	}
	w.statusCode = statusCode
	w.wroteHead = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHead {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
