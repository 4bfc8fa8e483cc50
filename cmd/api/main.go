//	@title			Media Storage Gateway API
//	@version		1.0
//	@description	Disk- or S3-backed file storage gateway fronting a CDN origin.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mediagate/service/internal/config"
	"github.com/mediagate/service/internal/media"
	appMiddleware "github.com/mediagate/service/internal/middleware"
	"github.com/mediagate/service/internal/response"
	"github.com/mediagate/service/internal/storage"

	_ "github.com/mediagate/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	// Wire dependencies: storage → service → handler
	svc := media.NewService(store, cfg.PublicBaseURL)
	handler := media.NewHandler(svc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(appMiddleware.Metrics)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	handler.Routes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		// Blob transfers can be slow, so the read/write timeouts are generous.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s, storage=%s)", cfg.Port, cfg.AppEnv, cfg.StorageDriver)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
