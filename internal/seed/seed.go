package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/blaisecz/vitals-tracker/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededDays = 21

// Users are the fixed sample accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
}

// Run seeds sample users and three weeks of synthetic readings, then
// computes each day's summary oldest first so carry-forward has history.
// Safe to call multiple times: re-delivered readings are skipped as duplicates.
func Run(ctx context.Context, db *gorm.DB, days service.DailyService, log *zap.Logger) error {
	for _, user := range Users {
		user := user
		if err := db.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	today := time.Now().UTC()
	for i, user := range Users {
		// deterministic per user
		rng := rand.New(rand.NewSource(int64(i) + 1))
		for d := seededDays - 1; d >= 0; d-- {
			date := today.AddDate(0, 0, -d).Format(domain.DateLayout)

			req, err := Day(date, user.Location(), rng)
			if err != nil {
				return err
			}
			if _, err := days.Ingest(ctx, user.ID, date, req); err != nil {
				return fmt.Errorf("failed to ingest %s for %s: %w", date, user.ID, err)
			}
			if _, err := days.Summarize(ctx, user.ID, date); err != nil {
				return fmt.Errorf("failed to summarize %s for %s: %w", date, user.ID, err)
			}
		}
		log.Info("seeded user", zap.String("user_id", user.ID.String()), zap.String("timezone", user.Timezone))
	}

	log.Info("seed completed", zap.Int("users", len(Users)), zap.Int("days", seededDays))
	return nil
}

// Day builds a plausible batch for date in loc: a staged night ending that
// morning, five-minute step buckets through the waking hours, and heart
// rate, HRV and respiratory readings. Every third day skips HRV so summaries
// exercise carry-forward. IDs are derived from the date and are stable.
func Day(date string, loc *time.Location, rng *rand.Rand) (*domain.IngestReadingsRequest, error) {
	bounds, err := domain.DayBounds(date, loc)
	if err != nil {
		return nil, err
	}
	day := bounds.Start
	req := &domain.IngestReadingsRequest{}

	bedtime := day.Add(-time.Duration(60+rng.Intn(90)) * time.Minute)
	wake := day.Add(time.Duration(6*60+rng.Intn(120)) * time.Minute)

	// alternate core and deep with a brief awake spell midway
	midpoint := bedtime.Add(wake.Sub(bedtime) / 2)
	segments := []struct {
		from, to time.Time
		stage    domain.SleepStage
	}{
		{bedtime, midpoint, domain.SleepStageAsleepCore},
		{midpoint, midpoint.Add(10 * time.Minute), domain.SleepStageAwake},
		{midpoint.Add(10 * time.Minute), wake, domain.SleepStageAsleepDeep},
	}
	for i, seg := range segments {
		req.Sleep = append(req.Sleep, domain.SleepSegmentInput{
			ID:    fmt.Sprintf("seed-sleep-%s-%d", date, i),
			Stage: seg.stage,
			Start: seg.from,
			End:   seg.to,
		})
	}

	add := func(kind domain.SignalKind, id string, start time.Time, end *time.Time, value float64) {
		req.Quantities = append(req.Quantities, domain.QuantityReadingInput{
			ID:    fmt.Sprintf("seed-%s-%s-%s", kind, date, id),
			Kind:  kind,
			Start: start,
			End:   end,
			Value: value,
		})
	}

	for t, n := bedtime, 0; t.Before(wake); t, n = t.Add(10*time.Minute), n+1 {
		add(domain.SignalHeartRate, fmt.Sprint(n), t, nil, float64(48+rng.Intn(12)))
		if n%3 == 0 {
			add(domain.SignalRespiratoryRate, fmt.Sprint(n), t, nil, 12+rng.Float64()*4)
		}
		if n%6 == 0 && !skipHRV(date) {
			add(domain.SignalHRV, fmt.Sprint(n), t, nil, float64(35+rng.Intn(30)))
		}
	}

	add(domain.SignalRestingHeartRate, "0", wake.Add(8*time.Hour), nil, float64(54+rng.Intn(8)))

	for t, n := wake, 0; t.Before(day.Add(22 * time.Hour)); t, n = t.Add(5*time.Minute), n+1 {
		end := t.Add(5 * time.Minute)
		steps := float64(rng.Intn(8))
		// a walk every couple of hours
		if n%24 < 4 {
			steps = float64(300 + rng.Intn(300))
		}
		add(domain.SignalStepCount, fmt.Sprint(n), t, &end, steps)
	}

	return req, nil
}

func skipHRV(date string) bool {
	d, err := domain.ParseDate(date)
	if err != nil {
		return false
	}
	return d.YearDay()%3 == 0
}
