// Package main is the entry point for the SiteForge API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siteforge/internal/config"
	"siteforge/internal/database"
	"siteforge/internal/handlers"
	"siteforge/internal/middleware"
	"siteforge/internal/router"
	"siteforge/internal/storage"
	"siteforge/internal/store"
	"siteforge/internal/token"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey — backs the bearer token store.
	valkeyClient, err := token.Connect(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	tokens := token.NewStore(valkeyClient)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	builderStore := store.NewBuilderStore(db)
	sectionStore := store.NewSectionStore(db)
	styleStore := store.NewStyleStore(db)
	supportStore := store.NewSupportStore(db)
	templateStore := store.NewTemplateStore(db)

	// Connect to S3-compatible object storage (optional — the API works
	// without it; asset uploads are disabled).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — asset uploads disabled")
	}

	// Authorization policy for section template mutations.
	policy := middleware.NewPolicy(cfg.PrivilegedRoleIDs)

	// Create handler groups with their dependencies.
	h := router.Handlers{
		Auth:         handlers.NewAuth(userStore, tokens),
		Verification: handlers.NewVerification(userStore),
		Builders:     handlers.NewBuilders(builderStore, cfg.PublicSiteBase),
		Sections:     handlers.NewSections(sectionStore, styleStore),
		Supports:     handlers.NewSupports(supportStore),
		Templates:    handlers.NewTemplates(templateStore),
		Assets:       handlers.NewAssets(storageClient),
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(tokens, policy, h)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
