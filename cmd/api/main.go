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

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/service-booking/internal/db"
	"github.com/BruksfildServices01/service-booking/internal/handlers"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
	"github.com/BruksfildServices01/service-booking/internal/infra/events"
	"github.com/BruksfildServices01/service-booking/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/service-booking/internal/infra/repository"
	"github.com/BruksfildServices01/service-booking/internal/infra/storage"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	"github.com/BruksfildServices01/service-booking/internal/routes"
	"github.com/BruksfildServices01/service-booking/internal/seed"
)

func main() {

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	fatal := func(msg string, err error) {
		logger.Error(msg, slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}

	health := map[string]handlers.Pinger{}

	// ======================================================
	// STORE
	// ======================================================
	var store routes.Store
	var closeStore func() error

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store = memstore.New()
		closeStore = func() error { return nil }
		logger.Warn("using in-memory store, data is lost on restart")

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			fatal("database connection failed", err)
		}
		store = infraRepo.NewGormStore(db)
		closeStore = func() error { return dbpkg.Close(db) }
		health["database"] = dbpkg.Ping(db)
	}

	// ======================================================
	// CACHE + RATE LIMIT
	// ======================================================
	var cacheStore cache.Cache = cache.NewMemory()
	var limiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.RateLimitAuth, cfg.RateLimitWindow)
	closeCache := func() error { return nil }

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisFromURL(cfg.RedisURL, "booking:")
		if err != nil {
			fatal("redis configuration invalid", err)
		}

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = rc.Ping(pingCtx)
		cancel()

		if err != nil {
			logger.Error("redis connection failed, falling back to memory", slog.String("error", err.Error()))
			_ = rc.Close()
		} else {
			cacheStore = rc
			limiter = middleware.NewRedisLimiter(rc.Client(), cfg.RateLimitAuth, cfg.RateLimitWindow, "booking:ratelimit:")
			closeCache = rc.Close
			health["redis"] = rc.Ping
			logger.Info("redis connected")
		}
	}

	// ======================================================
	// EVENTS
	// ======================================================
	var publisher events.Publisher = events.NewNoop()
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.EventsQueue)
		if err != nil {
			logger.Error("rabbitmq unavailable, events disabled", slog.String("error", err.Error()))
		} else {
			publisher = p
			logger.Info("rabbitmq publisher enabled", slog.String("queue", cfg.EventsQueue))
		}
	}

	// ======================================================
	// MEDIA STORAGE
	// ======================================================
	var objects storage.ObjectStore
	uploadDir := ""

	if cfg.S3Bucket != "" {
		objects = storage.NewS3(storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		logger.Info("s3 media storage enabled", slog.String("bucket", cfg.S3Bucket))
	} else {
		local, err := storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL)
		if err != nil {
			fatal("upload dir unavailable", err)
		}
		objects = local
		uploadDir = cfg.UploadDir
	}

	// ======================================================
	// AUDIT + AUTH
	// ======================================================
	dispatcher := audit.NewDispatcher(audit.New(store), publisher, logger)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL, "service-booking")

	// ======================================================
	// SEED
	// ======================================================
	if cfg.SeedOnStart || cfg.StorageDriver == config.StorageDriverMemory {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		s := seed.New(store, store, logger)
		if _, err := s.Services(ctx, seed.DefaultServices); err != nil {
			logger.Error("catalog seed failed", slog.String("error", err.Error()))
		}
		if err := s.Admin(ctx, seed.Admin{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			Phone:    cfg.AdminPhone,
		}); err != nil {
			logger.Error("admin seed failed", slog.String("error", err.Error()))
		}
		cancel()
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Store:           store,
		Cache:           cacheStore,
		Objects:         objects,
		Audit:           dispatcher,
		Tokens:          tokens,
		Limiter:         limiter,
		Log:             logger,
		FrontendURL:     cfg.FrontendURL,
		Timezone:        cfg.Timezone,
		CacheTTL:        cfg.CacheTTL,
		RateLimitWindow: cfg.RateLimitWindow,
		UploadDir:       uploadDir,
		Health:          health,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", slog.String("addr", cfg.Addr()), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server failed", err)
		}
	}()

	// ======================================================
	// SHUTDOWN
	// ======================================================
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown failed", slog.String("error", err.Error()))
	}

	dispatcher.Close()

	if err := publisher.Close(); err != nil {
		logger.Error("publisher close failed", slog.String("error", err.Error()))
	}
	if err := closeCache(); err != nil {
		logger.Error("redis close failed", slog.String("error", err.Error()))
	}
	if err := closeStore(); err != nil {
		logger.Error("database close failed", slog.String("error", err.Error()))
	}

	logger.Info("stopped")
}
