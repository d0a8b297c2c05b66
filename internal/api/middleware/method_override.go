package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms express PUT and DELETE: a POST carrying a
// _method field is rewritten before routing. Only urlencoded bodies are
// inspected; ParseForm caches the parsed body so handlers can still read it.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost &&
			strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err == nil {
				switch strings.ToUpper(r.PostForm.Get("_method")) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodPatch:
					r.Method = http.MethodPatch
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
