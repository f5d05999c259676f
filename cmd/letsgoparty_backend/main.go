package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/letsgoparty/letsgoparty_backend/internal/adapters/mailer"
	"github.com/letsgoparty/letsgoparty_backend/internal/adapters/storage"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/handlers"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
	"github.com/letsgoparty/letsgoparty_backend/internal/repositories/database/pgsql"
	"github.com/letsgoparty/letsgoparty_backend/pkg/database"
)

// @title Let's Go Party API
// @version 1.0
// @description Event listing backend: accounts, events, likes and contact.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool, logger)

	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	smtpMailer, err := mailer.NewSMTPMailer(cfg)
	if err != nil {
		return err
	}

	images, err := newImageStore(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("Image store ready", slog.String("backend", cfg.ImageStore))

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), smtpMailer, images)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, middleware.NewMetrics())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newImageStore(ctx context.Context, cfg *config.Config) (portssvc.ImageStore, error) {
	if cfg.ImageStore == config.ImageStoreS3 {
		return storage.NewS3Store(ctx, cfg)
	}
	return storage.NewLocalStore(cfg.UploadDir)
}
