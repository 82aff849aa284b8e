package service

import (
	"context"
	"testing"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestUserService_Create(t *testing.T) {
	need := 7.5

	tests := []struct {
		name    string
		req     *domain.CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid timezone",
			req: &domain.CreateUserRequest{
				Timezone: "Europe/Budapest",
			},
			wantErr: false,
		},
		{
			name: "with sleep need",
			req: &domain.CreateUserRequest{
				Timezone:       "UTC",
				SleepNeedHours: &need,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			svc := NewUserService(repo)

			user, err := svc.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if user == nil {
				t.Fatal("Create() returned nil user")
			}
			if user.Timezone != tt.req.Timezone {
				t.Errorf("Create() timezone = %v, want %v", user.Timezone, tt.req.Timezone)
			}
			if user.SleepNeedHours != tt.req.SleepNeedHours {
				t.Errorf("Create() sleep need = %v, want %v", user.SleepNeedHours, tt.req.SleepNeedHours)
			}
			if user.ID == uuid.Nil {
				t.Error("Create() user ID should not be nil")
			}
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "America/New_York"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	tests := []struct {
		name    string
		id      uuid.UUID
		wantErr error
	}{
		{
			name:    "existing user",
			id:      created.ID,
			wantErr: nil,
		},
		{
			name:    "non-existing user",
			id:      uuid.New(),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.GetByID(context.Background(), tt.id)
			if err != tt.wantErr {
				t.Errorf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && user == nil {
				t.Error("GetByID() returned nil user for existing ID")
			}
		})
	}
}

func TestUserService_Update(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "UTC"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	need := 9.0
	user, err := svc.Update(context.Background(), created.ID, &domain.UpdateUserRequest{SleepNeedHours: &need})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if user.SleepNeedHours == nil || *user.SleepNeedHours != 9 {
		t.Errorf("Update() sleep need = %v, want 9", user.SleepNeedHours)
	}

	user, err = svc.Update(context.Background(), created.ID, &domain.UpdateUserRequest{})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if user.SleepNeedHours != nil {
		t.Errorf("Update() should clear sleep need, got %v", *user.SleepNeedHours)
	}

	if _, err := svc.Update(context.Background(), uuid.New(), &domain.UpdateUserRequest{}); err != domain.ErrNotFound {
		t.Errorf("Update() unknown user error = %v, want ErrNotFound", err)
	}
}
