package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"safet-backend/internal/aigen"
	"safet-backend/internal/claims"
	"safet-backend/internal/config"
	"safet-backend/internal/cron"
	"safet-backend/internal/handlers"
	"safet-backend/internal/middleware"
	"safet-backend/internal/storage"
)

func main() {
	// 1. Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize evidence storage (local disk by default, R2 when configured)
	var evidenceStore storage.Store
	if cfg.R2.Configured() {
		evidenceStore, err = storage.NewR2Store(
			cfg.R2.AccountID, cfg.R2.AccessKey, cfg.R2.SecretKey,
			cfg.R2.Bucket, cfg.R2.PublicURL,
		)
	} else {
		evidenceStore, err = storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	}
	if err != nil {
		log.Fatalf("Failed to initialize evidence storage: %v", err)
	}

	// 3. External draft generator — optional; without an endpoint the
	// appeal handler falls back to the built-in templates.
	generator := aigen.New(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Timeout)
	if cfg.AI.Endpoint == "" {
		log.Println("AI draft generator not configured – template drafts only")
	}

	// 4. Set up router with global middleware
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5. Initialize handlers with their dependencies
	watchlist := claims.NewWatchlist()
	dashboardHandler := handlers.NewDashboardHandler(watchlist)
	appealHandler := handlers.NewAppealHandler(generator)
	evidenceHandler := handlers.NewEvidenceHandler(evidenceStore)

	// Start the background deadline sweep
	cron.StartDeadlineWatcher(watchlist)

	// 6. Routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("SAFE-T Guard API"))
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		handlers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Deadline evaluation & dashboard
	r.Post("/api/claims/check", dashboardHandler.CheckClaim)
	r.Post("/api/claims", dashboardHandler.AddClaim)
	r.Get("/api/dashboard", dashboardHandler.GetSummary)
	r.Post("/api/dashboard", dashboardHandler.EvaluateBatch)

	// Appeal drafts — rate limited since "ai" mode calls a paid upstream.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rate.Every(10*time.Second), 5))
		r.Post("/api/appeals", appealHandler.Draft)
	})

	// Evidence files
	r.Post("/api/upload", evidenceHandler.Upload)
	r.Get("/api/files/*", evidenceHandler.ServeFile)

	// 7. Start server with graceful shutdown
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server started on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-done
	log.Println("Server stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
