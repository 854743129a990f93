package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/birqadam/volunteer-backend/config"
	"github.com/birqadam/volunteer-backend/internal/api/http/middleware"
	"github.com/birqadam/volunteer-backend/internal/auth"
	"github.com/birqadam/volunteer-backend/internal/bootstrap"
	"github.com/birqadam/volunteer-backend/internal/logutils"
	"github.com/birqadam/volunteer-backend/internal/projects/repository"
	"github.com/birqadam/volunteer-backend/internal/projects/service"
	"github.com/birqadam/volunteer-backend/internal/storage/postgres"
	"github.com/birqadam/volunteer-backend/internal/users"
)

func main() {
	if err := run(); err != nil {
		logutils.Log.WithError(err).Fatal("api stopped")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logutils.Configure(cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	log := logutils.Log.WithFields(logutils.Fields{
		"service": cfg.App.ServiceName,
		"version": cfg.App.Version,
		"env":     cfg.App.Environment,
	})

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(&cfg.Database); err != nil {
			return err
		}
	}

	sqlDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      postgres.DSN(&cfg.Database),
		MaxConns: int32(cfg.Database.MaxConns),
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	// The create gate always reads Postgres so a revoked approval takes
	// effect on the next request; only /me goes through the cache.
	organizers := users.NewRepo(pool)
	var profiles auth.OrganizerLookup = organizers
	if redisClient != nil {
		defer redisClient.Close()
		profiles = users.NewCachedLookup(organizers, redisClient, cfg.Redis.OrganizerTTL)
	} else {
		log.Info("REDIS_ADDR not set, organizer cache disabled")
	}

	authMW, err := bootstrap.AuthMiddleware(ctx, cfg.Auth)
	if err != nil {
		return err
	}

	var limiter *middleware.KeyedLimiter
	if cfg.RateLimit.CreatePerMinute > 0 {
		limiter = middleware.NewKeyedLimiter(cfg.RateLimit.CreatePerMinute, cfg.RateLimit.CreateBurst)
	}

	projectSvc := service.NewProjectService(
		repository.NewProjectRepository(sqlDB),
		service.WithMetrics(service.NewMetrics()),
	)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:       cfg.App.ServiceName,
		Version:           cfg.App.Version,
		CORSOrigins:       cfg.Server.CORSAllowedOrigins,
		DB:                pool,
		Redis:             redisClient,
		Auth:              authMW,
		Organizers:        organizers,
		ProfileOrganizers: profiles,
		Projects:          projectSvc,
		CreateLimiter:     limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("http server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}
