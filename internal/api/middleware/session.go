package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/session"
)

type contextKey string

const (
	sessionKey contextKey = "session"
	userKey    contextKey = "currentUser"
	flashKey   contextKey = "flash"
)

// Flashes holds the queues drained from the session for this request's
// render. Once they are here they are gone from the session.
type Flashes struct {
	Success []string
	Error   []string
}

// Session is the request pipeline: resolve the session, resolve the current
// user from it, drain the flash queues, run the handler, then commit any
// session writes. Every request passes through here before routing decides
// anything else.
func Session(manager *session.Manager, auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess := manager.Load(ctx, w, r)

			var currentUser *domain.User
			if id := sess.UserID(); id != nil {
				user, err := auth.Deserialize(ctx, *id)
				if err != nil {
					log.Printf("ERROR [middleware.Session] deserialize failed for %s: %v", id, err)
				}
				// A nil user means the identity no longer resolves; the
				// request proceeds anonymous but the session is kept.
				currentUser = user
			}

			flashes := &Flashes{
				Success: sess.Flashes(session.FlashSuccess),
				Error:   sess.Flashes(session.FlashError),
			}

			ctx = context.WithValue(ctx, sessionKey, sess)
			ctx = context.WithValue(ctx, userKey, currentUser)
			ctx = context.WithValue(ctx, flashKey, flashes)

			next.ServeHTTP(w, r.WithContext(ctx))

			manager.Commit(ctx, sess)
		})
	}
}

func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}

func GetCurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}

func GetFlashes(ctx context.Context) *Flashes {
	if flashes, ok := ctx.Value(flashKey).(*Flashes); ok {
		return flashes
	}
	return &Flashes{}
}
