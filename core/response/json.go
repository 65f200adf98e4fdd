package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// JSON replies 200 with v encoded as application/json.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus replies with v encoded as JSON under the given status.
// Encoding streams straight to the writer; 204 and 304 send no body.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			status = http.StatusOK
			if v == nil {
				status = http.StatusNoContent
			}
		}
		w.WriteHeader(status)

		if status == http.StatusNoContent || status == http.StatusNotModified {
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}
