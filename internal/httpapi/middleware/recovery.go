package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"flavors/backend/internal/httpapi/response"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Printf("panic recovered [%s] %s %s: %v\n%s", GetRequestID(r.Context()), r.Method, r.URL.Path, rec, debug.Stack())
			response.Error(w, r, http.StatusInternalServerError, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
