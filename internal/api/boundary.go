package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/mkamath/wanderstay/internal/api/handlers"
	"github.com/mkamath/wanderstay/internal/api/middleware"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/web"
	"gorm.io/gorm"
)

// boundary is the single error rendering path. Every handler returns error;
// whatever comes out lands here and nowhere else, including the 404 for
// unmatched routes.
type boundary struct {
	renderer *web.Renderer
}

func (b *boundary) handle(h handlers.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			b.render(w, r, err)
		}
	}
}

func (b *boundary) notFound() http.HandlerFunc {
	return b.handle(func(http.ResponseWriter, *http.Request) error {
		return domain.NotFound("Page Not Found")
	})
}

func (b *boundary) render(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong!"

	var appErr *domain.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		message = appErr.Message
	case errors.Is(err, domain.ErrNotOwner):
		status = http.StatusForbidden
		message = "You do not have permission to do that"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "Invalid username or password"
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
		message = "Page Not Found"
	}

	if status >= 500 {
		log.Printf("ERROR [api.boundary] %s %s: %v", r.Method, r.URL.Path, err)
	}

	user, _ := middleware.GetCurrentUser(r.Context())
	flashes := middleware.GetFlashes(r.Context())
	renderErr := b.renderer.Render(w, status, "error", web.PageData{
		Title:       "Error",
		CurrentUser: user,
		Success:     flashes.Success,
		Error:       flashes.Error,
		Data:        struct{ Message string }{Message: message},
	})
	if renderErr != nil {
		log.Printf("ERROR [api.boundary] failed to render error page: %v", renderErr)
		http.Error(w, message, status)
	}
}
