package aggregate

import (
	"testing"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func TestHRV_FallbackOrder(t *testing.T) {
	primary := []domain.Interval{window(0, 60)}
	fallback := []domain.Interval{window(600, 660)}

	tests := []struct {
		name     string
		samples  []domain.HRVSample
		previous *float64
		want     domain.Metric
		wantOK   bool
	}{
		{
			name:     "primary wins",
			samples:  []domain.HRVSample{hrvAt(10, 40), hrvAt(20, 50), hrvAt(610, 90)},
			previous: float(42),
			want:     domain.Metric{Value: 45},
			wantOK:   true,
		},
		{
			name:     "fallback before previous",
			samples:  []domain.HRVSample{hrvAt(620, 33)},
			previous: float(42),
			want:     domain.Metric{Value: 33},
			wantOK:   true,
		},
		{
			name:     "full imputation",
			samples:  []domain.HRVSample{hrvAt(300, 70)},
			previous: float(42),
			want:     domain.Metric{Value: 42, Imputed: true},
			wantOK:   true,
		},
		{
			name:    "nothing at all",
			samples: []domain.HRVSample{hrvAt(300, 70)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &domain.DailyFlags{HRVSamples: tt.samples}
			got, ok := HRV(f, primary, fallback, tt.previous)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNocturnalHR(t *testing.T) {
	primary := []domain.Interval{window(0, 60)}
	fallback := []domain.Interval{window(600, 660)}

	var overnight []domain.HeartRateSample
	for i := 1; i <= 10; i++ {
		overnight = append(overnight, domain.HeartRateSample{ID: string(rune('a' + i)), Time: at(i), Value: float64(49 + i)})
	}

	t.Run("cached aggregate short-circuits", func(t *testing.T) {
		f := &domain.DailyFlags{HeartRateSamples: overnight, AggregatedNocturnalAverage: float(47)}
		got, ok := NocturnalHR(f, primary, fallback, float(60))
		require.True(t, ok)
		assert.Equal(t, domain.Metric{Value: 47}, got)
	})

	t.Run("tenth percentile over primary", func(t *testing.T) {
		f := &domain.DailyFlags{HeartRateSamples: overnight}
		got, ok := NocturnalHR(f, primary, fallback, nil)
		require.True(t, ok)
		assert.Equal(t, domain.Metric{Value: 50}, got)
	})

	t.Run("fallback intervals", func(t *testing.T) {
		f := &domain.DailyFlags{HeartRateSamples: []domain.HeartRateSample{
			{ID: "x", Time: at(610), Value: 66},
			{ID: "y", Time: at(620), Value: 61},
		}}
		got, ok := NocturnalHR(f, primary, fallback, float(55))
		require.True(t, ok)
		assert.Equal(t, domain.Metric{Value: 61}, got)
	})

	t.Run("previous value is imputed", func(t *testing.T) {
		got, ok := NocturnalHR(&domain.DailyFlags{}, primary, fallback, float(55))
		require.True(t, ok)
		assert.Equal(t, domain.Metric{Value: 55, Imputed: true}, got)
	})

	t.Run("none", func(t *testing.T) {
		_, ok := NocturnalHR(&domain.DailyFlags{}, primary, fallback, nil)
		assert.False(t, ok)
	})
}

func TestRestingHR(t *testing.T) {
	fallback := []domain.Interval{window(600, 700)}

	t.Run("latest resting sample wins", func(t *testing.T) {
		f := &domain.DailyFlags{HeartRateSamples: []domain.HeartRateSample{
			{ID: "r2", Time: at(900), Value: 57, Context: domain.HeartRateResting},
			{ID: "n1", Time: at(950), Value: 90, Context: domain.HeartRateNormal},
			{ID: "r1", Time: at(100), Value: 52, Context: domain.HeartRateResting},
			{ID: "n2", Time: at(610), Value: 70, Context: domain.HeartRateNormal},
		}}
		got, ok := RestingHR(f, fallback, float(50))
		require.True(t, ok)
		assert.Equal(t, domain.Metric{Value: 57}, got)
	})

	t.Run("average over fallback intervals", func(t *testing.T) {
		f := &domain.DailyFlags{HeartRateSamples: []domain.HeartRateSample{
			{ID: "n1", Time: at(610), Value: 60, Context: domain.HeartRateNormal},
			{ID: "n2", Time: at(620), Value: 70, Context: domain.HeartRateNormal},
			{ID: "n3", Time: at(800), Value: 120, Context: domain.HeartRateNormal},
		}}
		got, ok := RestingHR(f, fallback, float(50))
		require.True(t, ok)
		assert.Equal(t, domain.Metric{Value: 65}, got)
	})

	t.Run("previous value is imputed", func(t *testing.T) {
		got, ok := RestingHR(&domain.DailyFlags{}, fallback, float(50))
		require.True(t, ok)
		assert.Equal(t, domain.Metric{Value: 50, Imputed: true}, got)
	})
}

func TestRespiratoryRate(t *testing.T) {
	f := &domain.DailyFlags{RespiratorySamples: []domain.RespiratorySample{
		{ID: "a", Time: at(10), Value: 12},
		{ID: "b", Time: at(500), Value: 20},
	}}

	got, ok := RespiratoryRate(f, nil)
	require.True(t, ok)
	assert.Equal(t, 16.0, got)

	got, ok = RespiratoryRate(f, []domain.Interval{window(0, 60)})
	require.True(t, ok)
	assert.Equal(t, 12.0, got)

	_, ok = RespiratoryRate(f, []domain.Interval{window(100, 200)})
	assert.False(t, ok)

	_, ok = RespiratoryRate(&domain.DailyFlags{}, nil)
	assert.False(t, ok)
}

func TestSleepDurationSeconds(t *testing.T) {
	segments := []domain.SleepSegment{
		{ID: "1", Start: at(0), End: at(60), Stage: domain.SleepStageAsleepCore},
		{ID: "2", Start: at(60), End: at(75), Stage: domain.SleepStageAwake},
		{ID: "3", Start: at(75), End: at(135), Stage: domain.SleepStageAsleepDeep},
	}

	got, ok := SleepDurationSeconds(&domain.DailyFlags{SleepSegments: segments})
	require.True(t, ok)
	assert.Equal(t, (2 * time.Hour).Seconds(), got)

	got, ok = SleepDurationSeconds(&domain.DailyFlags{SleepSegments: segments, AggregatedSleepDurationSeconds: float(100)})
	require.True(t, ok)
	assert.Equal(t, 100.0, got)

	_, ok = SleepDurationSeconds(&domain.DailyFlags{SleepSegments: segments[1:2]})
	assert.False(t, ok)
}

func TestStepTotal(t *testing.T) {
	f := &domain.DailyFlags{StepBuckets: []domain.StepBucket{bucket(0, 5, 100), bucket(5, 10, 250)}}

	got, ok := StepTotal(f)
	require.True(t, ok)
	assert.Equal(t, 350.0, got)

	f.AggregatedStepTotal = float(9999)
	got, ok = StepTotal(f)
	require.True(t, ok)
	assert.Equal(t, 9999.0, got)

	_, ok = StepTotal(&domain.DailyFlags{})
	assert.False(t, ok)
}
