// Package handlers holds the HTTP handlers. Every handler returns error and
// relies on the api boundary for rendering failures; success paths either
// render a view or redirect.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkamath/wanderstay/internal/api/middleware"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/web"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// pageData assembles the layout payload every view needs: the current user
// and the flash queues drained by the session pipeline.
func pageData(r *http.Request, title string, data any) web.PageData {
	user, _ := middleware.GetCurrentUser(r.Context())
	flashes := middleware.GetFlashes(r.Context())
	return web.PageData{
		Title:       title,
		CurrentUser: user,
		Success:     flashes.Success,
		Error:       flashes.Error,
		Data:        data,
	}
}

func urlID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, domain.NotFound("Page Not Found")
	}
	return id, nil
}

// currentUser is for handlers behind RequireLogin, where a missing user is a
// pipeline bug rather than an expected state.
func currentUser(r *http.Request) (*domain.User, error) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		return nil, domain.AuthenticationError("You must be logged in")
	}
	return user, nil
}
