package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/knorx/knorx-site/internal/appctx"
	"github.com/knorx/knorx-site/internal/config"
	"github.com/knorx/knorx-site/internal/contact"
	"github.com/knorx/knorx-site/internal/gcplog"
	"github.com/knorx/knorx-site/internal/handler"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("Configuration loaded successfully",
		"env", cfg.Server.Env,
		"delivery", cfg.Contact.Delivery,
	)

	// Initialize contact delivery
	notifier, err := contact.NewNotifier(cfg)
	if err != nil {
		logger.Error("Failed to initialize contact notifier", "error", err)
		os.Exit(1)
	}

	renderer, err := contact.NewRenderer(cfg.Contact)
	if err != nil {
		logger.Error("Failed to load email templates", "error", err)
		os.Exit(1)
	}

	svc := contact.NewService(notifier, renderer)

	// Initialize handler
	h := handler.New(cfg, svc, logger)

	// Setup HTTP router
	mux := http.NewServeMux()

	// Register routes
	h.RegisterRoutes(mux)

	// Create HTTP server
	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: appctx.Handler(mux, logger,
			gcplog.HTTPMiddleware(logger, "/health"),
			h.CanonicalHost,
			handler.Recoverer,
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Contact.SendTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting HTTP server", "addr", addr, "url", cfg.Server.URL("/"))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited gracefully")
}

// newLogger writes Cloud Logging JSON outside development and readable text locally
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Server.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.Server.Level(),
		}))
	}

	return slog.New(gcplog.NewHandler(os.Stdout, &gcplog.Options{
		Level:   cfg.Server.Level(),
		Service: os.Getenv("K_SERVICE"),
		Version: os.Getenv("K_REVISION"),
	}))
}
