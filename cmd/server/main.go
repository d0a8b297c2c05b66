package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkamath/wanderstay/internal/api"
	"github.com/mkamath/wanderstay/internal/config"
	"github.com/mkamath/wanderstay/internal/images"
	"github.com/mkamath/wanderstay/internal/repository/postgres"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/session"
	"github.com/mkamath/wanderstay/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize session manager
	sessions := session.NewManager(repos.Session, session.Options{
		Secret:            cfg.SessionSecret,
		Secure:            cfg.SessionCookieSecure,
		SaveUninitialized: cfg.SessionSaveUninitialized,
	})

	// Sweep expired sessions in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := repos.Session.DeleteExpired(context.Background(), time.Now())
			if err != nil {
				log.Printf("ERROR [main] session sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Removed %d expired sessions", n)
			}
		}
	}()

	// Initialize services
	services := service.NewServices(repos, cfg)

	// Initialize view renderer and photo processor
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}
	processor, err := images.NewProcessor(cfg.PhotoDir)
	if err != nil {
		log.Fatalf("failed to prepare photo dir: %v", err)
	}

	// Initialize router
	router := api.NewRouter(services, sessions, renderer, processor)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
