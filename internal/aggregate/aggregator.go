package aggregate

import (
	"math"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
)

const (
	// DefaultSedentaryThresholdStepsPerHour is the highest step rate a window
	// may average and still count as sedentary.
	DefaultSedentaryThresholdStepsPerHour = 120.0

	// DefaultSedentaryMinimumDuration is the shortest sedentary window kept.
	DefaultSedentaryMinimumDuration = 30 * time.Minute

	// DefaultSleepNeedHours applies when neither the user nor the caller sets one.
	DefaultSleepNeedHours = 8.0
)

// Aggregator turns a day's DailyFlags into a DailySummary.
type Aggregator struct {
	SedentaryThresholdStepsPerHour float64
	SedentaryMinimumDuration       time.Duration
}

// New returns an Aggregator with the given sedentary tuning. Non-positive
// values select the defaults.
func New(thresholdStepsPerHour float64, minDuration time.Duration) *Aggregator {
	if thresholdStepsPerHour <= 0 {
		thresholdStepsPerHour = DefaultSedentaryThresholdStepsPerHour
	}
	if minDuration <= 0 {
		minDuration = DefaultSedentaryMinimumDuration
	}
	return &Aggregator{
		SedentaryThresholdStepsPerHour: thresholdStepsPerHour,
		SedentaryMinimumDuration:       minDuration,
	}
}

// SummaryInput is what the caller knows beyond the day's own readings.
type SummaryInput struct {
	SleepNeedHours float64
	Previous       domain.PreviousValues
	// FallbackIntervals replace the day's sedentary intervals when non-empty.
	FallbackIntervals []domain.Interval
}

// Sedentary returns the day's sedentary intervals, excluding sleep.
func (a *Aggregator) Sedentary(f *domain.DailyFlags) []domain.Interval {
	return SedentaryIntervals(f.StepBuckets, a.SedentaryThresholdStepsPerHour, a.SedentaryMinimumDuration, f.SleepIntervals())
}

// Summarize reduces flags into the summary for date. The summary keeps its
// own copy of flags.
func (a *Aggregator) Summarize(date string, flags domain.DailyFlags, in SummaryInput) domain.DailySummary {
	sleep := flags.SleepIntervals()
	fallback := in.FallbackIntervals
	if len(fallback) == 0 {
		fallback = SedentaryIntervals(flags.StepBuckets, a.SedentaryThresholdStepsPerHour, a.SedentaryMinimumDuration, sleep)
	}

	need := in.SleepNeedHours
	if need <= 0 {
		need = DefaultSleepNeedHours
	}

	summary := domain.DailySummary{
		Date:           date,
		SleepNeedHours: need,
		Imputed:        map[string]bool{},
	}

	if m, ok := HRV(&flags, sleep, fallback, in.Previous.HRV); ok {
		summary.HRV = ptr(m.Value)
		markImputed(summary.Imputed, domain.ImputedHRV, m)
	}
	if m, ok := NocturnalHR(&flags, sleep, fallback, in.Previous.NocturnalHR); ok {
		summary.NocturnalHR = ptr(m.Value)
		markImputed(summary.Imputed, domain.ImputedNocturnalHR, m)
	}
	if m, ok := RestingHR(&flags, fallback, in.Previous.RestingHR); ok {
		summary.RestingHR = ptr(m.Value)
		markImputed(summary.Imputed, domain.ImputedRestingHR, m)
	}
	if v, ok := RespiratoryRate(&flags, sleep); ok {
		summary.RespiratoryRate = ptr(v)
	}
	if v, ok := SleepDurationSeconds(&flags); ok {
		summary.TotalSleepSeconds = ptr(v)
		summary.SleepDebtHours = ptr(sleepDebt(need, v))
	}
	if v, ok := StepTotal(&flags); ok {
		summary.StepCount = ptr(v)
	}

	summary.UpdatedFlags = flags.Clone()
	return summary
}

// sleepDebt is the shortfall against need in hours, rounded to minutes.
func sleepDebt(needHours, sleptSeconds float64) float64 {
	debt := needHours - sleptSeconds/3600
	if debt <= 0 {
		return 0
	}
	return math.Round(debt*60) / 60
}

func markImputed(imputed map[string]bool, key string, m domain.Metric) {
	if m.Imputed {
		imputed[key] = true
	}
}

func ptr(v float64) *float64 {
	return &v
}
