package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/vitals-tracker/internal/aggregate"
	"github.com/blaisecz/vitals-tracker/internal/cache"
	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/blaisecz/vitals-tracker/internal/repository"
	"github.com/blaisecz/vitals-tracker/internal/telemetry"
	"github.com/blaisecz/vitals-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type DailyService interface {
	Ingest(ctx context.Context, userID uuid.UUID, date string, req *domain.IngestReadingsRequest) (*domain.IngestResult, error)
	PruneDeleted(ctx context.Context, userID uuid.UUID, date string, ids []string) (bool, error)
	RemoveReading(ctx context.Context, userID uuid.UUID, date, readingID string) error
	Summarize(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error)
}

type dailyService struct {
	days             repository.DailyRecordRepository
	users            repository.UserRepository
	summaries        cache.SummaryCache
	aggregator       *aggregate.Aggregator
	defaultSleepNeed float64
	metrics          *telemetry.Metrics
	log              *zap.Logger
}

func NewDailyService(
	days repository.DailyRecordRepository,
	users repository.UserRepository,
	summaries cache.SummaryCache,
	aggregator *aggregate.Aggregator,
	defaultSleepNeed float64,
	metrics *telemetry.Metrics,
	log *zap.Logger,
) DailyService {
	if defaultSleepNeed <= 0 {
		defaultSleepNeed = aggregate.DefaultSleepNeedHours
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &dailyService{
		days:             days,
		users:            users,
		summaries:        summaries,
		aggregator:       aggregator,
		defaultSleepNeed: defaultSleepNeed,
		metrics:          metrics,
		log:              log,
	}
}

func (s *dailyService) startSpan(ctx context.Context, name string, userID uuid.UUID, date string) (context.Context, trace.Span) {
	return otel.Tracer("vitals-tracker-api/daily").Start(ctx, "DailyService."+name,
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("day.date", date),
		),
	)
}

func (s *dailyService) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// Ingest buffers a batch of readings into the day. Readings whose ID is
// already buffered count as duplicates. Unknown kinds and readings starting
// outside the day's window in the user's timezone are ignored.
func (s *dailyService) Ingest(ctx context.Context, userID uuid.UUID, date string, req *domain.IngestReadingsRequest) (*domain.IngestResult, error) {
	ctx, span := s.startSpan(ctx, "Ingest", userID, date)
	defer span.End()

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	window, err := domain.IngestWindow(date, user.Location())
	if err != nil {
		return nil, err
	}

	var (
		result   domain.IngestResult
		accepted map[domain.SignalKind]int
	)
	_, changed, err := s.days.Mutate(ctx, userID, date, func(flags *domain.DailyFlags) (bool, error) {
		var changed bool
		result, accepted, changed = flags.Absorb(req, window)
		return changed, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", date, err)
	}

	for kind, n := range accepted {
		s.metrics.ReadingsIngested(string(kind), n)
	}
	if changed {
		s.invalidate(ctx, userID, date)
	}

	span.SetAttributes(
		attribute.Int("ingest.accepted", result.Accepted),
		attribute.Int("ingest.duplicates", result.Duplicates),
		attribute.Int("ingest.ignored", result.Ignored),
	)
	s.log.Debug("readings ingested",
		zap.String("user_id", userID.String()),
		zap.String("date", date),
		zap.Int("accepted", result.Accepted),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("ignored", result.Ignored),
	)

	return &result, nil
}

// PruneDeleted removes every buffered element whose ID was deleted at the
// source and reports whether the day changed. Cached aggregates are kept.
func (s *dailyService) PruneDeleted(ctx context.Context, userID uuid.UUID, date string, ids []string) (bool, error) {
	ctx, span := s.startSpan(ctx, "PruneDeleted", userID, date)
	defer span.End()

	if _, err := domain.ParseDate(date); err != nil {
		return false, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return false, err
	}

	deleted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		deleted[id] = struct{}{}
	}

	var pruned int
	_, changed, err := s.days.Mutate(ctx, userID, date, func(flags *domain.DailyFlags) (bool, error) {
		before := flags.Len()
		changed := flags.PruneDeletedSamples(deleted)
		pruned = before - flags.Len()
		return changed, nil
	})
	if err != nil {
		return false, fmt.Errorf("prune %s: %w", date, err)
	}

	if changed {
		s.metrics.SamplesPruned(pruned)
		s.invalidate(ctx, userID, date)
	}
	span.SetAttributes(attribute.Int("prune.removed", pruned))

	return changed, nil
}

// RemoveReading drops a single reading. Returns ErrNotFound when nothing in
// the day carries readingID.
func (s *dailyService) RemoveReading(ctx context.Context, userID uuid.UUID, date, readingID string) error {
	ctx, span := s.startSpan(ctx, "RemoveReading", userID, date)
	defer span.End()

	if _, err := domain.ParseDate(date); err != nil {
		return err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	var removed int
	_, changed, err := s.days.Mutate(ctx, userID, date, func(flags *domain.DailyFlags) (bool, error) {
		before := flags.Len()
		flags.RemoveSample(readingID)
		removed = before - flags.Len()
		return removed > 0, nil
	})
	if err != nil {
		return fmt.Errorf("remove reading %s: %w", readingID, err)
	}
	if !changed {
		return domain.ErrNotFound
	}

	s.metrics.SamplesPruned(removed)
	s.invalidate(ctx, userID, date)
	return nil
}

// Summarize computes the day's summary, stores it and caches the response.
// Days without records still produce a summary so previous values carry
// forward.
func (s *dailyService) Summarize(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryResponse, error) {
	ctx, span := s.startSpan(ctx, "Summarize", userID, date)
	defer span.End()

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cached, err := s.summaries.Get(ctx, userID, date)
	switch {
	case err == nil:
		s.metrics.CacheHit()
		s.metrics.SummaryComputed("cache")
		span.SetAttributes(attribute.Bool("summary.cached", true))
		return cached, nil
	case errors.Is(err, cache.ErrCacheMiss):
		s.metrics.CacheMiss()
	default:
		s.log.Warn("summary cache read failed", zap.String("user_id", userID.String()), zap.String("date", date), zap.Error(err))
	}

	var flags domain.DailyFlags
	rec, err := s.days.Get(ctx, userID, date)
	switch {
	case err == nil:
		flags = rec.Flags
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("load day %s: %w", date, err)
	}

	var previous domain.PreviousValues
	prev, err := s.days.LatestSummaryBefore(ctx, userID, date)
	switch {
	case err == nil:
		previous = prev.Previous()
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("load previous summary for %s: %w", date, err)
	}

	sleepNeed := s.defaultSleepNeed
	if user.SleepNeedHours != nil {
		sleepNeed = *user.SleepNeedHours
	}

	summary := s.aggregator.Summarize(date, flags, aggregate.SummaryInput{
		SleepNeedHours: sleepNeed,
		Previous:       previous,
	})

	if err := s.days.SaveSummary(ctx, domain.NewSummaryRecord(userID, &summary)); err != nil {
		return nil, fmt.Errorf("save summary %s: %w", date, err)
	}

	s.metrics.SummaryComputed("computed")
	for key := range summary.Imputed {
		if summary.IsImputed(key) {
			s.metrics.MetricImputed(key)
		}
	}

	resp := summary.ToResponse()
	if err := s.summaries.Set(ctx, userID, &resp); err != nil {
		s.log.Warn("summary cache write failed", zap.String("user_id", userID.String()), zap.String("date", date), zap.Error(err))
	}

	span.SetAttributes(
		attribute.Bool("summary.cached", false),
		attribute.Int("summary.buffered", flags.Len()),
		attribute.Int("summary.imputed", len(summary.Imputed)),
	)
	return &resp, nil
}

// List pages through stored summaries, newest first.
func (s *dailyService) List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error) {
	if filter.From != "" {
		if _, err := domain.ParseDate(filter.From); err != nil {
			return nil, err
		}
	}
	if filter.To != "" {
		if _, err := domain.ParseDate(filter.To); err != nil {
			return nil, err
		}
	}
	if filter.From != "" && filter.To != "" && filter.From > filter.To {
		return nil, fmt.Errorf("%w: from is after to", domain.ErrInvalidInput)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := s.days.ListSummaries(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	page, next, more := pagination.Page(rows, filter.Limit, func(r domain.SummaryRecord) pagination.Cursor {
		return pagination.Cursor{Date: r.Date, ID: r.ID}
	})

	resp := &domain.SummaryListResponse{
		Data:       make([]domain.SummaryResponse, len(page)),
		Pagination: domain.PaginationResponse{NextCursor: next, HasMore: more},
	}
	for i := range page {
		resp.Data[i] = page[i].ToResponse()
	}
	return resp, nil
}

func (s *dailyService) invalidate(ctx context.Context, userID uuid.UUID, date string) {
	if err := s.summaries.Invalidate(ctx, userID, date); err != nil {
		s.log.Warn("summary cache invalidation failed", zap.String("user_id", userID.String()), zap.String("date", date), zap.Error(err))
	}
}
