package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	a := New(0, -time.Minute)
	assert.Equal(t, DefaultSedentaryThresholdStepsPerHour, a.SedentaryThresholdStepsPerHour)
	assert.Equal(t, DefaultSedentaryMinimumDuration, a.SedentaryMinimumDuration)

	a = New(80, 45*time.Minute)
	assert.Equal(t, 80.0, a.SedentaryThresholdStepsPerHour)
	assert.Equal(t, 45*time.Minute, a.SedentaryMinimumDuration)
}

func TestSummarize_EmptyFlags(t *testing.T) {
	a := New(0, 0)

	s := a.Summarize("2024-01-15", domain.DailyFlags{}, SummaryInput{SleepNeedHours: 7.5})

	assert.Equal(t, "2024-01-15", s.Date)
	assert.Equal(t, 7.5, s.SleepNeedHours)
	assert.Nil(t, s.HRV)
	assert.Nil(t, s.NocturnalHR)
	assert.Nil(t, s.RestingHR)
	assert.Nil(t, s.TotalSleepSeconds)
	assert.Nil(t, s.SleepDebtHours)
	assert.Nil(t, s.RespiratoryRate)
	assert.Nil(t, s.StepCount)
	assert.Empty(t, s.Imputed)

	s = a.Summarize("2024-01-15", domain.DailyFlags{}, SummaryInput{})
	assert.Equal(t, DefaultSleepNeedHours, s.SleepNeedHours)
}

func TestSummarize_FullImputationFromPrevious(t *testing.T) {
	a := New(0, 0)
	prev := domain.PreviousValues{HRV: float(42), NocturnalHR: float(51), RestingHR: float(58)}

	s := a.Summarize("2024-01-15", domain.DailyFlags{}, SummaryInput{Previous: prev})

	require.NotNil(t, s.HRV)
	assert.Equal(t, 42.0, *s.HRV)
	assert.Equal(t, 51.0, *s.NocturnalHR)
	assert.Equal(t, 58.0, *s.RestingHR)
	assert.True(t, s.IsImputed(domain.ImputedHRV))
	assert.True(t, s.IsImputed(domain.ImputedNocturnalHR))
	assert.True(t, s.IsImputed(domain.ImputedRestingHR))
}

func TestSummarize_TypicalDay(t *testing.T) {
	var f domain.DailyFlags

	// 23:00–06:00 asleep, with a short awake spell
	f.AppendSleep(domain.SleepSegment{ID: "s1", Start: at(-60), End: at(180), Stage: domain.SleepStageAsleepCore})
	f.AppendSleep(domain.SleepSegment{ID: "s2", Start: at(180), End: at(200), Stage: domain.SleepStageAwake})
	f.AppendSleep(domain.SleepSegment{ID: "s3", Start: at(200), End: at(360), Stage: domain.SleepStageAsleepDeep})

	for i, v := range []float64{38, 44, 52, 41, 47} {
		f.Append(domain.QuantitySample{ID: fmt.Sprintf("hrv-%d", i), Start: at(30 + i*60), Value: v}, domain.SignalHRV)
	}
	for i := 0; i < 20; i++ {
		f.Append(domain.QuantitySample{ID: fmt.Sprintf("hr-%d", i), Start: at(i * 15), Value: float64(48 + i)}, domain.SignalHeartRate)
	}
	f.Append(domain.QuantitySample{ID: "rhr", Start: at(700), Value: 56}, domain.SignalRestingHeartRate)
	f.Append(domain.QuantitySample{ID: "rr-1", Start: at(60), Value: 13}, domain.SignalRespiratoryRate)
	f.Append(domain.QuantitySample{ID: "rr-2", Start: at(120), Value: 15}, domain.SignalRespiratoryRate)
	f.Append(domain.QuantitySample{ID: "rr-day", Start: at(800), Value: 22}, domain.SignalRespiratoryRate)

	// daytime: an idle hour, a ten minute hole, then a walk
	for m := 600; m < 660; m += 5 {
		f.Append(domain.QuantitySample{ID: fmt.Sprintf("st-%d", m), Start: at(m), End: at(m + 5), Value: 4}, domain.SignalStepCount)
	}
	for m := 670; m < 730; m += 5 {
		f.Append(domain.QuantitySample{ID: fmt.Sprintf("st-%d", m), Start: at(m), End: at(m + 5), Value: 500}, domain.SignalStepCount)
	}

	a := New(120, 30*time.Minute)
	assert.Equal(t, []domain.Interval{window(600, 660)}, a.Sedentary(&f))

	s := a.Summarize("2024-01-15", f, SummaryInput{SleepNeedHours: 8, Previous: domain.PreviousValues{HRV: float(99)}})

	require.NotNil(t, s.HRV)
	assert.Equal(t, 44.0, *s.HRV)
	assert.False(t, s.IsImputed(domain.ImputedHRV))

	// 18 of the 20 hr samples fall asleep (180 and 195 are awake); p10 index floor(17*0.1)=1
	require.NotNil(t, s.NocturnalHR)
	assert.Equal(t, 49.0, *s.NocturnalHR)

	require.NotNil(t, s.RestingHR)
	assert.Equal(t, 56.0, *s.RestingHR)

	require.NotNil(t, s.RespiratoryRate)
	assert.Equal(t, 14.0, *s.RespiratoryRate)

	require.NotNil(t, s.TotalSleepSeconds)
	assert.Equal(t, (400 * time.Minute).Seconds(), *s.TotalSleepSeconds)
	require.NotNil(t, s.SleepDebtHours)
	assert.InDelta(t, 8-400.0/60, *s.SleepDebtHours, 1.0/60)

	require.NotNil(t, s.StepCount)
	assert.Equal(t, 12*4.0+12*500.0, *s.StepCount)

	assert.Empty(t, s.Imputed)
	assert.Equal(t, f.Len(), s.UpdatedFlags.Len())
}

func TestSummarize_UpdatedFlagsDoNotAliasInput(t *testing.T) {
	f := domain.DailyFlags{HRVSamples: []domain.HRVSample{hrvAt(300, 61), hrvAt(310, 63)}}

	s := New(0, 0).Summarize("2024-01-15", f, SummaryInput{})
	f.HRVSamples[0].Value = 99
	f.RemoveSample(f.HRVSamples[1].ID)

	require.Len(t, s.UpdatedFlags.HRVSamples, 2)
	assert.Equal(t, 61.0, s.UpdatedFlags.HRVSamples[0].Value)
}

func TestSummarize_CallerFallbackIntervals(t *testing.T) {
	f := domain.DailyFlags{HRVSamples: []domain.HRVSample{hrvAt(300, 61)}}

	s := New(0, 0).Summarize("2024-01-15", f, SummaryInput{
		FallbackIntervals: []domain.Interval{window(290, 310)},
		Previous:          domain.PreviousValues{HRV: float(40)},
	})

	require.NotNil(t, s.HRV)
	assert.Equal(t, 61.0, *s.HRV)
	assert.False(t, s.IsImputed(domain.ImputedHRV))
}

func TestSleepDebt(t *testing.T) {
	assert.Equal(t, 0.0, sleepDebt(8, 9*3600))
	assert.Equal(t, 1.0, sleepDebt(8, 7*3600))
	assert.Equal(t, 0.5, sleepDebt(8, 7.5*3600))
}
