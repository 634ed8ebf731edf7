package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "autoservice/api/swagger" // swagger docs
	"autoservice/internal/app"
	"autoservice/internal/cache"
	"autoservice/internal/config"
	"autoservice/internal/database"
	"autoservice/internal/logger"
	"autoservice/internal/mail"
	"autoservice/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title           Auto Service Back-Office API
// @version         1.0
// @description     Back-office API for an auto repair shop. Every endpoint answers HTTP 200 with {"result": "<outcome>"}.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description The session travels in the sessionToken cookie set by /api/login (Cookie: sessionToken=<token>).
func main() {
	cfg, err := config.Load("configs/.env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

func run(cfg config.Config, log *zap.SugaredLogger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer closeDB(db, log)
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Infow("connected to database", "driver", cfg.Database.Driver)

	ticketsDB := db
	if cfg.Database.TicketsDSN != "" {
		if ticketsDB, err = database.NewConnection(cfg.Database.Driver, cfg.Database.TicketsDSN); err != nil {
			return fmt.Errorf("tickets database: %w", err)
		}
		defer closeDB(ticketsDB, log)
	}
	if err := database.MigrateTickets(ticketsDB); err != nil {
		return err
	}

	permCache, closeCache, err := newPermissionCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	var mailer service.Mailer = mail.NewLogClient(log)
	if cfg.Mail.Host != "" {
		mailer = mail.New(cfg.Mail)
	}

	application := app.New(app.Options{
		Config:    cfg,
		DB:        db,
		TicketsDB: ticketsDB,
		Cache:     permCache,
		Mailer:    mailer,
		Log:       log,
	})
	// Runs before the database handles close so queued audit rows are written.
	defer application.Recorder.Close()

	// Always seeds the permission catalogue; the administrator only when an email is configured.
	if err := application.Auth.SeedAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	go application.Hub.Run(ctx)
	go application.WatchAudit(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: application.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newPermissionCache uses Redis when configured so several instances share invalidation.
func newPermissionCache(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) (cache.PermissionCache, func(), error) {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewMemoryCache(cfg.Cache.PermissionTTL), func() {}, nil
	}
	rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.PermissionTTL, log)
	if err != nil {
		return nil, nil, err
	}
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Warnw("failed to close redis", "error", err)
		}
	}, nil
}

func closeDB(db *gorm.DB, log *zap.SugaredLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warnw("failed to close database", "error", err)
	}
}
