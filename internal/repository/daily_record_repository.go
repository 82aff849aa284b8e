package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/blaisecz/vitals-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayMutation edits a day's flags in place and reports whether anything
// changed. Unchanged days are not written back.
type DayMutation func(flags *domain.DailyFlags) (bool, error)

// errUnchanged rolls back a mutation that left the day as it was, so an
// empty day created for it is not kept.
var errUnchanged = errors.New("day unchanged")

type DailyRecordRepository interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error)
	Mutate(ctx context.Context, userID uuid.UUID, date string, fn DayMutation) (*domain.DailyRecord, bool, error)
	SaveSummary(ctx context.Context, summary *domain.SummaryRecord) error
	LatestSummaryBefore(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryRecord, error)
	ListSummaries(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) ([]domain.SummaryRecord, error)
}

type dailyRecordRepository struct {
	db *gorm.DB
}

func NewDailyRecordRepository(db *gorm.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

func (r *dailyRecordRepository) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error) {
	var rec domain.DailyRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Mutate runs fn against the day's flags under a row lock, creating an empty
// day first if needed. Concurrent writers to the same day are serialized.
// When fn reports no change the transaction is rolled back.
func (r *dailyRecordRepository) Mutate(ctx context.Context, userID uuid.UUID, date string, fn DayMutation) (*domain.DailyRecord, bool, error) {
	var (
		rec     domain.DailyRecord
		changed bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := domain.DailyRecord{UserID: userID, Date: date}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND date = ?", userID, date).
			First(&rec).Error; err != nil {
			return err
		}

		var err error
		changed, err = fn(&rec.Flags)
		if err != nil {
			return err
		}
		if !changed {
			return errUnchanged
		}

		return tx.Model(&rec).Select("flags", "updated_at").Updates(&rec).Error
	})
	if errors.Is(err, errUnchanged) {
		return &rec, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &rec, changed, nil
}

// SaveSummary upserts the summary for its (user, date).
func (r *dailyRecordRepository) SaveSummary(ctx context.Context, summary *domain.SummaryRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"hrv", "nocturnal_hr", "resting_hr", "total_sleep_seconds", "sleep_need_hours",
			"sleep_debt_hours", "respiratory_rate", "step_count", "imputed", "updated_at",
		}),
	}).Create(summary).Error
}

// LatestSummaryBefore returns the most recent stored summary strictly before
// date. Dates compare lexically since they are all YYYY-MM-DD.
func (r *dailyRecordRepository) LatestSummaryBefore(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryRecord, error) {
	var rec domain.SummaryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date < ?", userID, date).
		Order("date DESC").
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *dailyRecordRepository) ListSummaries(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) ([]domain.SummaryRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		query = query.Where(
			"(date < ?) OR (date = ? AND id < ?)",
			cursor.Date, cursor.Date, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var rows []domain.SummaryRecord
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
