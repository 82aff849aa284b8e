// Vitals Tracker API
//
// REST API for buffering physiological readings and computing daily summaries.
//
//	@title			Vitals Tracker API
//	@version		1.0
//	@description	Buffer physiological readings per user and day, and compute daily HRV, heart rate, sleep, respiratory and step summaries.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			days
//	@tag.description	Daily readings and summaries
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/aggregate"
	"github.com/blaisecz/vitals-tracker/internal/api"
	"github.com/blaisecz/vitals-tracker/internal/api/handler"
	"github.com/blaisecz/vitals-tracker/internal/cache"
	"github.com/blaisecz/vitals-tracker/internal/config"
	"github.com/blaisecz/vitals-tracker/internal/logger"
	"github.com/blaisecz/vitals-tracker/internal/repository"
	"github.com/blaisecz/vitals-tracker/internal/seed"
	"github.com/blaisecz/vitals-tracker/internal/service"
	"github.com/blaisecz/vitals-tracker/internal/telemetry"
	"go.uber.org/zap"
)

const serviceName = "vitals-tracker-api"

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	log.Info("database migration completed")

	// Summary cache is optional
	var kv cache.KVStore = cache.NoopKVStore{}
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		kv = cache.NewRedisKVStore(client)
		log.Info("summary cache enabled", zap.Duration("ttl", cfg.SummaryCacheTTL))
	} else {
		log.Warn("REDIS_URL not set, summaries will not be cached")
	}

	var metrics *telemetry.Metrics
	if cfg.MetricsEnabled {
		metrics = telemetry.NewMetrics()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dayRepo := repository.NewDailyRecordRepository(db)

	// Initialize services
	aggregator := aggregate.New(cfg.SedentaryThresholdStepsPerHour, cfg.SedentaryMinimumDuration)
	userService := service.NewUserService(userRepo)
	dailyService := service.NewDailyService(
		dayRepo,
		userRepo,
		cache.NewSummaryCache(kv, cfg.SummaryCacheTTL),
		aggregator,
		cfg.DefaultSleepNeedHours,
		metrics,
		log.Named("daily"),
	)

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, db, dailyService, log.Named("seed")); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	dayHandler := handler.NewDayHandler(dailyService, log.Named("http"))

	// Setup router
	router := api.NewRouter(userHandler, dayHandler, metrics, log.Named("http"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
