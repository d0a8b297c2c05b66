package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mkamath/wanderstay/internal/api/handlers"
	"github.com/mkamath/wanderstay/internal/api/middleware"
	"github.com/mkamath/wanderstay/internal/images"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/session"
	"github.com/mkamath/wanderstay/internal/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(services *service.Services, sessions *session.Manager, renderer *web.Renderer, processor *images.Processor) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.MethodOverride)
	r.Use(middleware.Session(sessions, services.Auth))

	// Health check and metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Listing photos
	r.Handle("/photos/*", http.StripPrefix("/photos/",
		http.FileServer(http.Dir(processor.Dir()))))

	// Initialize handlers
	b := &boundary{renderer: renderer}
	authHandler := handlers.NewAuthHandler(services.Auth, renderer)
	listingHandler := handlers.NewListingHandler(services.Listing, renderer)
	reviewHandler := handlers.NewReviewHandler(services.Review)
	photoHandler := handlers.NewPhotoHandler(services.Listing, processor)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/listings", http.StatusFound)
	})

	// User routes
	r.Get("/signup", b.handle(authHandler.ShowSignup))
	r.Post("/signup", b.handle(authHandler.Signup))
	r.Get("/login", b.handle(authHandler.ShowLogin))
	r.Post("/login", b.handle(authHandler.Login))
	r.Post("/logout", b.handle(authHandler.Logout))

	// Listing routes
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", b.handle(listingHandler.Index))
		r.Get("/{id}", b.handle(listingHandler.Show))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin)
			r.Get("/new", b.handle(listingHandler.New))
			r.Post("/", b.handle(listingHandler.Create))
			r.Get("/{id}/edit", b.handle(listingHandler.Edit))
			r.Put("/{id}", b.handle(listingHandler.Update))
			r.Delete("/{id}", b.handle(listingHandler.Delete))
			r.Post("/{id}/photo", b.handle(photoHandler.Upload))

			// Review sub-resource
			r.Post("/{id}/reviews", b.handle(reviewHandler.Create))
			r.Delete("/{id}/reviews/{reviewID}", b.handle(reviewHandler.Delete))
		})
	})

	// Everything unmatched flows through the one error boundary.
	r.NotFound(b.notFound())
	r.MethodNotAllowed(b.notFound())

	return r
}
