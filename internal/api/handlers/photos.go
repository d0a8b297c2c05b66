package handlers

import (
	"net/http"

	"github.com/mkamath/wanderstay/internal/api/middleware"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/images"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/session"
)

const maxPhotoBytes = 10 << 20 // 10 MiB

type PhotoHandler struct {
	listingService *service.ListingService
	processor      *images.Processor
}

func NewPhotoHandler(listingService *service.ListingService, processor *images.Processor) *PhotoHandler {
	return &PhotoHandler{listingService: listingService, processor: processor}
}

func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	listingID, err := urlID(r, "id")
	if err != nil {
		return err
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		return domain.ValidationError("photo upload too large or malformed")
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		return domain.ValidationError("photo is required")
	}
	defer file.Close()

	original, thumbnail, err := h.processor.Save(file, header.Filename)
	if err != nil {
		return domain.ValidationError("photo must be a valid image")
	}

	_, err = h.listingService.SetPhoto(r.Context(), listingID, user.ID,
		"/photos/"+original, "/photos/"+thumbnail)
	if err != nil {
		return err
	}

	if sess, ok := middleware.GetSession(r.Context()); ok {
		sess.AddFlash(session.FlashSuccess, "Photo uploaded!")
	}
	http.Redirect(w, r, "/listings/"+listingID.String(), http.StatusSeeOther)
	return nil
}
