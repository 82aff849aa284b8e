package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/cache"
	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/blaisecz/vitals-tracker/internal/repository"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) UpdateSleepNeed(ctx context.Context, id uuid.UUID, hours *float64) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.SleepNeedHours = hours
	return nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

type dayKey struct {
	userID uuid.UUID
	date   string
}

// MockDailyRecordRepository keeps records and summaries in memory.
type MockDailyRecordRepository struct {
	mu        sync.Mutex
	records   map[dayKey]*domain.DailyRecord
	summaries map[dayKey]*domain.SummaryRecord
	writes    int
	err       error
}

func NewMockDailyRecordRepository() *MockDailyRecordRepository {
	return &MockDailyRecordRepository{
		records:   make(map[dayKey]*domain.DailyRecord),
		summaries: make(map[dayKey]*domain.SummaryRecord),
	}
}

func (m *MockDailyRecordRepository) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[dayKey{userID, date}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rec
	cp.Flags = rec.Flags.Clone()
	return &cp, nil
}

func (m *MockDailyRecordRepository) Mutate(ctx context.Context, userID uuid.UUID, date string, fn repository.DayMutation) (*domain.DailyRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, false, m.err
	}

	rec := domain.DailyRecord{ID: uuid.New(), UserID: userID, Date: date}
	if existing, ok := m.records[dayKey{userID, date}]; ok {
		rec = *existing
		rec.Flags = existing.Flags.Clone()
	}

	changed, err := fn(&rec.Flags)
	if err != nil {
		return nil, false, err
	}
	if changed {
		rec.UpdatedAt = time.Now()
		stored := rec
		stored.Flags = rec.Flags.Clone()
		m.records[dayKey{userID, date}] = &stored
		m.writes++
	}
	return &rec, changed, nil
}

func (m *MockDailyRecordRepository) SaveSummary(ctx context.Context, summary *domain.SummaryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	key := dayKey{summary.UserID, summary.Date}
	if existing, ok := m.summaries[key]; ok {
		summary.ID = existing.ID
	} else if summary.ID == uuid.Nil {
		summary.ID = uuid.New()
	}
	cp := *summary
	m.summaries[key] = &cp
	return nil
}

func (m *MockDailyRecordRepository) LatestSummaryBefore(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryRecord, error) {
	rows := m.sortedSummaries(userID)
	for _, r := range rows {
		if r.Date < date {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockDailyRecordRepository) ListSummaries(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) ([]domain.SummaryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.SummaryRecord
	for _, r := range m.sortedSummaries(userID) {
		if filter.From != "" && r.Date < filter.From {
			continue
		}
		if filter.To != "" && r.Date > filter.To {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// sortedSummaries returns the user's summaries, newest first.
func (m *MockDailyRecordRepository) sortedSummaries(userID uuid.UUID) []domain.SummaryRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []domain.SummaryRecord
	for k, r := range m.summaries {
		if k.userID == userID {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows
}

func (m *MockDailyRecordRepository) SetError(err error) {
	m.err = err
}

// MockKVStore is an in-memory cache.KVStore.
type MockKVStore struct {
	mu      sync.Mutex
	values  map[string]string
	deletes int
	err     error
}

func NewMockKVStore() *MockKVStore {
	return &MockKVStore{values: make(map[string]string)}
}

func (m *MockKVStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (m *MockKVStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *MockKVStore) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, k := range keys {
		if _, ok := m.values[k]; ok {
			m.deletes++
		}
		delete(m.values, k)
	}
	return nil
}

func (m *MockKVStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}
