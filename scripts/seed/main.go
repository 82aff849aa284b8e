package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blaisecz/vitals-tracker/internal/aggregate"
	"github.com/blaisecz/vitals-tracker/internal/cache"
	"github.com/blaisecz/vitals-tracker/internal/config"
	"github.com/blaisecz/vitals-tracker/internal/logger"
	"github.com/blaisecz/vitals-tracker/internal/repository"
	"github.com/blaisecz/vitals-tracker/internal/seed"
	"github.com/blaisecz/vitals-tracker/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, "console", "vitals-seed")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	users := repository.NewUserRepository(db)
	days := service.NewDailyService(
		repository.NewDailyRecordRepository(db),
		users,
		cache.NewSummaryCache(nil, cfg.SummaryCacheTTL),
		aggregate.New(cfg.SedentaryThresholdStepsPerHour, cfg.SedentaryMinimumDuration),
		cfg.DefaultSleepNeedHours,
		nil,
		log,
	)

	if err := seed.Run(context.Background(), db, days, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
}
