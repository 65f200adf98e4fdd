package response

import (
	"net/http"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// Render executes resp against the context's writer. A response that fails
// to write falls back to a bare 500; callers wanting richer handling go
// through the router's error handler instead.
func Render(ctx handler.Context, resp handler.Response) {
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// String replies 200 with a text/plain body.
func String(content string) handler.Response {
	return respond(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

// StringWithStatus replies with a text/plain body and the given status.
func StringWithStatus(content string, status int) handler.Response {
	return respond(status, "text/plain; charset=utf-8", []byte(content))
}

// HTML replies 200 with a text/html body.
func HTML(content string) handler.Response {
	return respond(http.StatusOK, "text/html; charset=utf-8", []byte(content))
}

// HTMLWithStatus replies with a text/html body and the given status.
func HTMLWithStatus(content string, status int) handler.Response {
	return respond(status, "text/html; charset=utf-8", []byte(content))
}

// Bytes replies 200 with a raw body under the given content type.
func Bytes(content []byte, contentType string) handler.Response {
	return respond(http.StatusOK, contentType, content)
}

// BytesWithStatus replies with a raw body, content type, and status.
func BytesWithStatus(content []byte, contentType string, status int) handler.Response {
	return respond(status, contentType, content)
}

// NoContent replies 204 with an empty body.
func NoContent() handler.Response {
	return respond(http.StatusNoContent, "", nil)
}

// Status replies with an empty body and the given status code.
func Status(code int) handler.Response {
	return respond(code, "", nil)
}

// respond is the single write path behind the helpers above. A zero status
// means 200; an empty body writes headers only.
func respond(status int, contentType string, body []byte) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if len(body) == 0 {
			return nil
		}
		_, err := w.Write(body)
		return err
	}
}
