package middleware

import (
	"net/http"

	"github.com/mkamath/wanderstay/internal/session"
)

// RequireLogin guards a route group. Anonymous requests are flashed an error
// and bounced to the login page.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetCurrentUser(r.Context()); !ok {
			if sess, ok := GetSession(r.Context()); ok {
				sess.AddFlash(session.FlashError, "You must be logged in")
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
