package handlers

import (
	"net/http"
	"strconv"

	"github.com/mkamath/wanderstay/internal/api/middleware"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/session"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	listingID, err := urlID(r, "id")
	if err != nil {
		return err
	}
	if err := r.ParseForm(); err != nil {
		return domain.ValidationError("invalid form submission")
	}

	rating, err := parseRating(r.PostFormValue("rating"))
	if err != nil {
		return err
	}

	_, err = h.reviewService.Create(r.Context(), service.CreateReviewInput{
		Comment:   r.PostFormValue("comment"),
		Rating:    rating,
		ListingID: listingID,
		AuthorID:  user.ID,
	})
	if err != nil {
		return err
	}

	if sess, ok := middleware.GetSession(r.Context()); ok {
		sess.AddFlash(session.FlashSuccess, "Review added!")
	}
	http.Redirect(w, r, "/listings/"+listingID.String(), http.StatusSeeOther)
	return nil
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	listingID, err := urlID(r, "id")
	if err != nil {
		return err
	}
	reviewID, err := urlID(r, "reviewID")
	if err != nil {
		return err
	}

	if err := h.reviewService.Delete(r.Context(), reviewID, user.ID); err != nil {
		return err
	}

	if sess, ok := middleware.GetSession(r.Context()); ok {
		sess.AddFlash(session.FlashSuccess, "Review deleted!")
	}
	http.Redirect(w, r, "/listings/"+listingID.String(), http.StatusSeeOther)
	return nil
}

// parseRating maps the optional form field: empty means no rating, anything
// non-numeric is the same violation an out-of-range rating produces.
func parseRating(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	rating, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.ValidationError("rating must be between 1 and 5")
	}
	return &rating, nil
}
