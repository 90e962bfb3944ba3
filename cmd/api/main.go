package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/tutor-classes-api/api/swagger"
	"github.com/noah-isme/tutor-classes-api/internal/handler"
	"github.com/noah-isme/tutor-classes-api/internal/repository"
	"github.com/noah-isme/tutor-classes-api/internal/service"
	"github.com/noah-isme/tutor-classes-api/pkg/cache"
	"github.com/noah-isme/tutor-classes-api/pkg/config"
	"github.com/noah-isme/tutor-classes-api/pkg/database"
	"github.com/noah-isme/tutor-classes-api/pkg/logger"
)

// @title Tutor Classes API
// @version 1.0.0
// @description Register tutors with weekly class schedules and search who is teaching a subject at a given time.
// @BasePath /
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to open schedule store", zap.Error(err))
	}
	defer closeStore()

	metrics := service.NewMetricsService()
	cacheSvc, closeCache := openCache(ctx, cfg, metrics, logr)
	defer closeCache()

	search := service.NewClassSearchService(store, cacheSvc, metrics, logr)
	register := service.NewClassRegistrationService(store, cacheSvc, validator.New(), metrics, logr)
	export := service.NewClassExportService(search)

	router := handler.NewRouter(handler.RouterConfig{
		Classes:        handler.NewClassHandler(search, register, export),
		Health:         handler.NewHealthHandler(store, metrics),
		Metrics:        metrics,
		Logger:         logr,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (repository.ScheduleStore, func(), error) {
	if cfg.Storage == config.StorageMemory {
		logr.Warn("using in-memory schedule store; data is lost on restart")
		return repository.NewMemoryScheduleStore(), func() {}, nil
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.DB, logr); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return repository.NewScheduleRepository(db), func() { _ = db.Close() }, nil
}

func openCache(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) (*service.CacheService, func()) {
	if !cfg.Search.CacheEnabled {
		return nil, func() {}
	}

	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("search cache disabled", zap.Error(err))
		return nil, func() {}
	}

	repo := repository.NewCacheRepository(client)
	return service.NewCacheService(repo, metrics, cfg.Search.CacheTTL, logr, true), func() { _ = repo.Close() }
}
