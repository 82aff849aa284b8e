package domain

import (
	"fmt"
	"time"
)

// DateLayout is the civil date format used for day keys.
const DateLayout = "2006-01-02"

// Keys of DailySummary.Imputed.
const (
	ImputedHRV         = "hrv"
	ImputedNocturnalHR = "nocturnalHR"
	ImputedRestingHR   = "restingHR"
)

// ParseDate parses a civil date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// DayBounds returns midnight-to-midnight of date in loc.
func DayBounds(date string, loc *time.Location) (Interval, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Interval{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return Interval{Start: start, End: start.AddDate(0, 0, 1)}, nil
}

// NightLeadIn is how far before midnight a day accepts readings, so the night
// that ends on a day's morning is buffered with that day.
const NightLeadIn = 6 * time.Hour

// IngestWindow is the span of start times a day accepts: its bounds in loc,
// opened NightLeadIn early.
func IngestWindow(date string, loc *time.Location) (Interval, error) {
	bounds, err := DayBounds(date, loc)
	if err != nil {
		return Interval{}, err
	}
	bounds.Start = bounds.Start.Add(-NightLeadIn)
	return bounds, nil
}

// Metric is the outcome of a composite query. Imputed marks a value carried
// forward from a previous day rather than measured.
type Metric struct {
	Value   float64
	Imputed bool
}

// PreviousValues are the prior day's figures used for carry-forward.
type PreviousValues struct {
	HRV         *float64
	NocturnalHR *float64
	RestingHR   *float64
}

// DailySummary is the snapshot of one calendar day produced by a single
// aggregation pass. It is never mutated after construction and owns the
// DailyFlags it was computed from.
type DailySummary struct {
	Date              string
	HRV               *float64
	NocturnalHR       *float64
	RestingHR         *float64
	TotalSleepSeconds *float64
	SleepNeedHours    float64
	SleepDebtHours    *float64
	RespiratoryRate   *float64
	StepCount         *float64
	UpdatedFlags      DailyFlags
	Imputed           map[string]bool
}

// IsImputed reports whether the named metric was carried forward.
func (s *DailySummary) IsImputed(key string) bool {
	return s.Imputed[key]
}

// SummaryResponse is the response body for summary endpoints.
// @Description Daily physiological summary. Absent metrics had no usable data.
type SummaryResponse struct {
	// Calendar day in the user's timezone
	Date string `json:"date" example:"2024-01-15"`
	// Median overnight HRV (ms)
	HRV *float64 `json:"hrv,omitempty" example:"48.5"`
	// Nocturnal heart rate, 10th percentile (bpm)
	NocturnalHR *float64 `json:"nocturnal_hr,omitempty" example:"52"`
	// Resting heart rate (bpm)
	RestingHR *float64 `json:"resting_hr,omitempty" example:"58"`
	// Total time asleep in seconds
	TotalSleepSeconds *float64 `json:"total_sleep_seconds,omitempty" example:"26400"`
	// Sleep need used for the debt figure
	SleepNeedHours float64 `json:"sleep_need_hours" example:"8"`
	// Hours short of the sleep need
	SleepDebtHours *float64 `json:"sleep_debt_hours,omitempty" example:"0.67"`
	// Mean respiratory rate (breaths/min)
	RespiratoryRate *float64 `json:"respiratory_rate,omitempty" example:"14.2"`
	// Total steps
	StepCount *float64 `json:"step_count,omitempty" example:"8421"`
	// Metrics carried forward from a previous day
	Imputed map[string]bool `json:"imputed"`
}

func (s *DailySummary) ToResponse() SummaryResponse {
	imputed := make(map[string]bool, len(s.Imputed))
	for k, v := range s.Imputed {
		imputed[k] = v
	}
	return SummaryResponse{
		Date:              s.Date,
		HRV:               s.HRV,
		NocturnalHR:       s.NocturnalHR,
		RestingHR:         s.RestingHR,
		TotalSleepSeconds: s.TotalSleepSeconds,
		SleepNeedHours:    s.SleepNeedHours,
		SleepDebtHours:    s.SleepDebtHours,
		RespiratoryRate:   s.RespiratoryRate,
		StepCount:         s.StepCount,
		Imputed:           imputed,
	}
}

// SummaryListResponse is a page of stored summaries.
// @Description Paginated list of daily summaries, newest first.
type SummaryListResponse struct {
	Data       []SummaryResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SummaryFilter contains filter parameters for listing summaries.
type SummaryFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}
