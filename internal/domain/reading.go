package domain

import "time"

// SignalKind identifies the physiological signal a quantity reading carries.
type SignalKind string

const (
	SignalHRV              SignalKind = "hrv"
	SignalHeartRate        SignalKind = "heart_rate"
	SignalRestingHeartRate SignalKind = "resting_heart_rate"
	SignalRespiratoryRate  SignalKind = "respiratory_rate"
	SignalStepCount        SignalKind = "step_count"
)

// Valid reports whether k is one of the known signal kinds.
func (k SignalKind) Valid() bool {
	switch k {
	case SignalHRV, SignalHeartRate, SignalRestingHeartRate, SignalRespiratoryRate, SignalStepCount:
		return true
	}
	return false
}

// TimedSample is implemented by every point-in-time reading the reducers accept.
type TimedSample interface {
	SampleID() string
	SampledAt() time.Time
	SampleValue() float64
}

// QuantitySample is a generic reading as delivered by the acquisition layer,
// before it is routed into a typed buffer.
type QuantitySample struct {
	ID    string
	Start time.Time
	End   time.Time
	Value float64
}

// HRVSample is a heart-rate variability reading in milliseconds.
type HRVSample struct {
	ID    string    `json:"id"`
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

func (s HRVSample) SampleID() string     { return s.ID }
func (s HRVSample) SampledAt() time.Time { return s.Time }
func (s HRVSample) SampleValue() float64 { return s.Value }

// HeartRateContext separates resting readings from general ones within the
// shared heart-rate buffer.
type HeartRateContext string

const (
	HeartRateNormal  HeartRateContext = "normal"
	HeartRateResting HeartRateContext = "resting"
)

// HeartRateSample is a heart-rate reading in beats per minute.
type HeartRateSample struct {
	ID      string           `json:"id"`
	Time    time.Time        `json:"time"`
	Value   float64          `json:"value"`
	Context HeartRateContext `json:"context"`
}

func (s HeartRateSample) SampleID() string     { return s.ID }
func (s HeartRateSample) SampledAt() time.Time { return s.Time }
func (s HeartRateSample) SampleValue() float64 { return s.Value }

// RespiratorySample is a respiratory rate reading in breaths per minute.
type RespiratorySample struct {
	ID    string    `json:"id"`
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

func (s RespiratorySample) SampleID() string     { return s.ID }
func (s RespiratorySample) SampledAt() time.Time { return s.Time }
func (s RespiratorySample) SampleValue() float64 { return s.Value }

// SleepStage is the staging reported for a sleep segment.
type SleepStage string

const (
	SleepStageInBed             SleepStage = "in_bed"
	SleepStageAsleepCore        SleepStage = "asleep_core"
	SleepStageAsleepDeep        SleepStage = "asleep_deep"
	SleepStageAsleepREM         SleepStage = "asleep_rem"
	SleepStageAsleepUnspecified SleepStage = "asleep_unspecified"
	SleepStageAwake             SleepStage = "awake"
)

func (s SleepStage) Valid() bool {
	return s == SleepStageInBed || s == SleepStageAwake || s.IsAsleep()
}

// IsAsleep reports whether the stage counts toward sleep time.
func (s SleepStage) IsAsleep() bool {
	switch s {
	case SleepStageAsleepCore, SleepStageAsleepDeep, SleepStageAsleepREM, SleepStageAsleepUnspecified:
		return true
	}
	return false
}

// SleepSegment is one staged interval of a night.
type SleepSegment struct {
	ID    string     `json:"id"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Stage SleepStage `json:"stage"`
}

// Duration is never negative; inverted segments count as zero.
func (s SleepSegment) Duration() time.Duration {
	if d := s.End.Sub(s.Start); d > 0 {
		return d
	}
	return 0
}

func (s SleepSegment) IsAsleep() bool {
	return s.Stage.IsAsleep()
}

// Interval returns the segment as a half-open interval.
func (s SleepSegment) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// StepBucket holds the steps accrued over [Start, End).
type StepBucket struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Steps float64   `json:"steps"`
}
