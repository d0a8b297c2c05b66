package handlers

import (
	"net/http"
	"strconv"

	"github.com/mkamath/wanderstay/internal/api/middleware"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/session"
	"github.com/mkamath/wanderstay/internal/web"
)

type ListingHandler struct {
	listingService *service.ListingService
	renderer       *web.Renderer
}

func NewListingHandler(listingService *service.ListingService, renderer *web.Renderer) *ListingHandler {
	return &ListingHandler{listingService: listingService, renderer: renderer}
}

type listingIndexData struct {
	Listings []*domain.Listing
}

type listingShowData struct {
	Listing *domain.Listing
	IsOwner bool
}

func (h *ListingHandler) Index(w http.ResponseWriter, r *http.Request) error {
	listings, err := h.listingService.List(r.Context(), 50, 0)
	if err != nil {
		return err
	}
	return h.renderer.Render(w, http.StatusOK, "listings_index",
		pageData(r, "All Listings", listingIndexData{Listings: listings}))
}

func (h *ListingHandler) Show(w http.ResponseWriter, r *http.Request) error {
	id, err := urlID(r, "id")
	if err != nil {
		return err
	}

	listing, err := h.listingService.Get(r.Context(), id)
	if err != nil {
		return err
	}

	isOwner := false
	if user, ok := middleware.GetCurrentUser(r.Context()); ok {
		isOwner = user.ID == listing.OwnerID
	}

	return h.renderer.Render(w, http.StatusOK, "listings_show",
		pageData(r, listing.Title, listingShowData{Listing: listing, IsOwner: isOwner}))
}

func (h *ListingHandler) New(w http.ResponseWriter, r *http.Request) error {
	return h.renderer.Render(w, http.StatusOK, "listings_new", pageData(r, "New Listing", nil))
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	if err := r.ParseForm(); err != nil {
		return domain.ValidationError("invalid form submission")
	}

	listing, err := h.listingService.Create(r.Context(), service.CreateListingInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Location:    r.PostFormValue("location"),
		Country:     r.PostFormValue("country"),
		Price:       parsePrice(r.PostFormValue("price")),
		OwnerID:     user.ID,
	})
	if err != nil {
		return err
	}

	if sess, ok := middleware.GetSession(r.Context()); ok {
		sess.AddFlash(session.FlashSuccess, "New listing created!")
	}
	http.Redirect(w, r, "/listings/"+listing.ID.String(), http.StatusSeeOther)
	return nil
}

func (h *ListingHandler) Edit(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	id, err := urlID(r, "id")
	if err != nil {
		return err
	}

	listing, err := h.listingService.Get(r.Context(), id)
	if err != nil {
		return err
	}
	if listing.OwnerID != user.ID {
		return domain.ErrNotOwner
	}

	return h.renderer.Render(w, http.StatusOK, "listings_edit",
		pageData(r, "Edit Listing", listingShowData{Listing: listing, IsOwner: true}))
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	id, err := urlID(r, "id")
	if err != nil {
		return err
	}
	if err := r.ParseForm(); err != nil {
		return domain.ValidationError("invalid form submission")
	}

	listing, err := h.listingService.Update(r.Context(), id, user.ID, service.UpdateListingInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Location:    r.PostFormValue("location"),
		Country:     r.PostFormValue("country"),
		Price:       parsePrice(r.PostFormValue("price")),
	})
	if err != nil {
		return err
	}

	if sess, ok := middleware.GetSession(r.Context()); ok {
		sess.AddFlash(session.FlashSuccess, "Listing updated!")
	}
	http.Redirect(w, r, "/listings/"+listing.ID.String(), http.StatusSeeOther)
	return nil
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	id, err := urlID(r, "id")
	if err != nil {
		return err
	}

	if err := h.listingService.Delete(r.Context(), id, user.ID); err != nil {
		return err
	}

	if sess, ok := middleware.GetSession(r.Context()); ok {
		sess.AddFlash(session.FlashSuccess, "Listing deleted!")
	}
	http.Redirect(w, r, "/listings", http.StatusSeeOther)
	return nil
}

func parsePrice(raw string) int64 {
	if raw == "" {
		return 0
	}
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1 // fails listing validation with a price violation
	}
	return price
}
