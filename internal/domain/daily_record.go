package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyRecord persists the DailyFlags of one user's calendar day.
type DailyRecord struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_daily_records_user_date" json:"user_id"`
	Date      string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_records_user_date" json:"date"`
	Flags     DailyFlags `gorm:"type:jsonb;serializer:json;not null" json:"flags"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyRecord) TableName() string {
	return "daily_records"
}

// SummaryRecord is the stored form of a DailySummary. The flags it was built
// from live in DailyRecord.
type SummaryRecord struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_summaries_user_date"`
	Date              string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_summaries_user_date,sort:desc"`
	HRV               *float64        `gorm:"column:hrv"`
	NocturnalHR       *float64        `gorm:"column:nocturnal_hr"`
	RestingHR         *float64        `gorm:"column:resting_hr"`
	TotalSleepSeconds *float64        `gorm:"column:total_sleep_seconds"`
	SleepNeedHours    float64         `gorm:"column:sleep_need_hours;not null"`
	SleepDebtHours    *float64        `gorm:"column:sleep_debt_hours"`
	RespiratoryRate   *float64        `gorm:"column:respiratory_rate"`
	StepCount         *float64        `gorm:"column:step_count"`
	Imputed           map[string]bool `gorm:"type:jsonb;serializer:json"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (SummaryRecord) TableName() string {
	return "daily_summaries"
}

// NewSummaryRecord flattens a summary for storage.
func NewSummaryRecord(userID uuid.UUID, s *DailySummary) *SummaryRecord {
	return &SummaryRecord{
		UserID:            userID,
		Date:              s.Date,
		HRV:               s.HRV,
		NocturnalHR:       s.NocturnalHR,
		RestingHR:         s.RestingHR,
		TotalSleepSeconds: s.TotalSleepSeconds,
		SleepNeedHours:    s.SleepNeedHours,
		SleepDebtHours:    s.SleepDebtHours,
		RespiratoryRate:   s.RespiratoryRate,
		StepCount:         s.StepCount,
		Imputed:           s.Imputed,
	}
}

func (r *SummaryRecord) ToResponse() SummaryResponse {
	imputed := r.Imputed
	if imputed == nil {
		imputed = map[string]bool{}
	}
	return SummaryResponse{
		Date:              r.Date,
		HRV:               r.HRV,
		NocturnalHR:       r.NocturnalHR,
		RestingHR:         r.RestingHR,
		TotalSleepSeconds: r.TotalSleepSeconds,
		SleepNeedHours:    r.SleepNeedHours,
		SleepDebtHours:    r.SleepDebtHours,
		RespiratoryRate:   r.RespiratoryRate,
		StepCount:         r.StepCount,
		Imputed:           imputed,
	}
}

// Previous extracts the carry-forward values for the following day.
func (r *SummaryRecord) Previous() PreviousValues {
	return PreviousValues{HRV: r.HRV, NocturnalHR: r.NocturnalHR, RestingHR: r.RestingHR}
}
