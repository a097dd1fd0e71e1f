// Package server wires the portal server together: database and migrations,
// object storage, services, the gRPC API and the metrics endpoint.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/server/config"
	"github.com/oluccaa/qualidade-sub001/internal/server/metrics"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/repomanager"
	"github.com/oluccaa/qualidade-sub001/internal/server/services"
	"github.com/oluccaa/qualidade-sub001/internal/server/storage"

	gs "github.com/oluccaa/qualidade-sub001/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	fileService   *services.FileService
	userService   *services.UserService
	notifications *services.NotificationService
}

// NewApp opens the database, applies migrations, makes sure an admin
// account exists and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	blobs, err := storage.New(ctx, storage.Config{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		BaseEndpoint: c.S3BaseEndpoint,
		TTL:          c.SignedURLTTL,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	us := services.NewUserService(db, rm, c.SecretKey, c.AccessTokenValidityDuration, logger)
	if err := us.EnsureAdmin(ctx, c.AdminEmail, c.AdminPassword); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		fileService:   services.NewFileService(db, rm, blobs, logger),
		userService:   us,
		notifications: services.NewNotificationService(db, rm, logger),
	}, nil
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.fileService, app.userService, app.notifications, app.config.SecretKey)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func (app *App) startMetricsServer(ctx context.Context) error {
	if app.config.MetricsAddr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until SIGINT, SIGTERM or SIGQUIT, or until one of the
// listeners fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.startGRPCServer(ctx) })
	g.Go(func() error { return app.startMetricsServer(ctx) })

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}
