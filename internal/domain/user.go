package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	// SleepNeedHours overrides the configured default when set.
	SleepNeedHours *float64  `gorm:"type:numeric(4,2)" json:"sleep_need_hours,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Location resolves the user's timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if l, err := time.LoadLocation(u.Timezone); err == nil {
			return l
		}
	}
	return time.UTC
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone       string   `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	SleepNeedHours *float64 `json:"sleep_need_hours,omitempty" validate:"omitempty,gte=4,lte=14" example:"8"`
}

// UpdateUserRequest is the request body for changing a user's settings.
// A null sleep_need_hours clears the override.
type UpdateUserRequest struct {
	SleepNeedHours *float64 `json:"sleep_need_hours" validate:"omitempty,gte=4,lte=14" example:"7.5"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Timezone       string    `json:"timezone"`
	SleepNeedHours *float64  `json:"sleep_need_hours,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Timezone:       u.Timezone,
		SleepNeedHours: u.SleepNeedHours,
		CreatedAt:      u.CreatedAt,
	}
}
