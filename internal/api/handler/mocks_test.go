package handler

import (
	"context"
	"net/http"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateFunc  func(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, SleepNeedHours: req.SleepNeedHours}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.User{ID: id, Timezone: "UTC", SleepNeedHours: req.SleepNeedHours}, nil
}

// MockDailyService is a mock implementation of DailyService
type MockDailyService struct {
	ingestFunc    func(ctx context.Context, userID uuid.UUID, date string, req *domain.IngestReadingsRequest) (*domain.IngestResult, error)
	pruneFunc     func(ctx context.Context, userID uuid.UUID, date string, ids []string) (bool, error)
	removeFunc    func(ctx context.Context, userID uuid.UUID, date, readingID string) error
	summarizeFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryResponse, error)
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error)
}

func (m *MockDailyService) Ingest(ctx context.Context, userID uuid.UUID, date string, req *domain.IngestReadingsRequest) (*domain.IngestResult, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, userID, date, req)
	}
	n := len(req.Quantities) + len(req.Sleep)
	return &domain.IngestResult{Accepted: n, Buffered: n}, nil
}

func (m *MockDailyService) PruneDeleted(ctx context.Context, userID uuid.UUID, date string, ids []string) (bool, error) {
	if m.pruneFunc != nil {
		return m.pruneFunc(ctx, userID, date, ids)
	}
	return true, nil
}

func (m *MockDailyService) RemoveReading(ctx context.Context, userID uuid.UUID, date, readingID string) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, userID, date, readingID)
	}
	return nil
}

func (m *MockDailyService) Summarize(ctx context.Context, userID uuid.UUID, date string) (*domain.SummaryResponse, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, userID, date)
	}
	return &domain.SummaryResponse{Date: date, SleepNeedHours: 8, Imputed: map[string]bool{}}, nil
}

func (m *MockDailyService) List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SummaryListResponse{Data: []domain.SummaryResponse{}}, nil
}

// withURLParams attaches chi route params to the request.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
