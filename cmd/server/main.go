package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tendant/simple-canonical/pkg/simplecanonical"
	"github.com/tendant/simple-canonical/pkg/simplecanonical/api"
	"github.com/tendant/simple-canonical/pkg/simplecanonical/config"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		sugar.Fatalw("Failed to load configuration", "error", err)
	}

	ctx := context.Background()
	repo, cleanup, err := cfg.BuildRepository(ctx)
	if err != nil {
		sugar.Fatalw("Failed to build repository", "error", err)
	}
	defer cleanup()

	hooks := simplecanonical.AuditHook(sugar.Infof)
	svc, err := cfg.BuildService(repo, hooks)
	if err != nil {
		sugar.Fatalw("Failed to build service", "error", err)
	}

	adminHandler := api.NewAdminHandler(svc)
	articleHandler := api.NewArticleHandler(svc, cfg.BaseURL, cfg.DisclaimersEnabled)

	// Set up router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Admin-context routes, optionally JWT-protected
	r.Route("/admin/articles", func(r chi.Router) {
		if cfg.AdminJWTSecret != "" {
			tokenAuth := jwtauth.New("HS256", []byte(cfg.AdminJWTSecret), nil)
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(jwtauth.Authenticator)
		}
		r.Mount("/", adminHandler.Routes())
	})

	// Public-context routes
	r.Mount("/articles", articleHandler.Routes())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "environment", cfg.Environment, "database", cfg.DatabaseType)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-done
	sugar.Info("Server stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
	sugar.Info("Server stopped")
}
