package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"flavors/backend/internal/httpapi/contextkeys"
)

var errTrailingData = errors.New("unexpected data after JSON body")

type errorBody struct {
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// JSON writes payload as-is, without an envelope.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, payload)
}

// Message writes the bare {"error": message} body the flavors routes use for
// logical failures such as a missing row.
func Message(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorBody{
		Error:     message,
		RequestID: requestIDFromContext(r),
	})
}

func ErrorWithDetails(w http.ResponseWriter, r *http.Request, status int, message string, details interface{}) {
	writeJSON(w, status, errorBody{
		Error:     message,
		Details:   details,
		RequestID: requestIDFromContext(r),
	})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON decodes the request body into dst. An empty body leaves dst
// untouched, like an empty object would. Unknown fields are ignored, anything
// after the first JSON value is an error.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func requestIDFromContext(r *http.Request) string {
	if v := r.Context().Value(contextkeys.RequestIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
