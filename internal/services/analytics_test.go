package services

import (
	"testing"

	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/stretchr/testify/require"
)

func TestEstimateOneRepMax(t *testing.T) {
	require.Equal(t, 100.0, EstimateOneRepMax(100, 1), "single rep returns the weight unchanged")
	require.Equal(t, 0.0, EstimateOneRepMax(100, 0))
	require.Equal(t, 0.0, EstimateOneRepMax(100, -3))
	require.Equal(t, 0.0, EstimateOneRepMax(0, 5))
	require.Equal(t, 0.0, EstimateOneRepMax(-80, 5))

	// 100 * 36 / 27 = 133.333..., rounded to one decimal.
	require.Equal(t, 133.3, EstimateOneRepMax(100, 10))
	require.Equal(t, 112.5, EstimateOneRepMax(100, 5))

	// Out of the formula's domain: must not panic or divide by zero.
	require.Equal(t, 0.0, EstimateOneRepMax(100, 37))
	require.Equal(t, 0.0, EstimateOneRepMax(100, 50))
}

func TestCalculateVolumeExcludesWarmupAndSkipped(t *testing.T) {
	working := []models.SetLog{
		{Weight: 100, Reps: 5},
		{Weight: 80, Reps: 10},
	}
	require.Equal(t, 1300.0, CalculateVolume(working))

	withExcluded := append(working,
		models.SetLog{Weight: 60, Reps: 12, IsWarmup: true},
		models.SetLog{Weight: 500, Reps: 100, Skipped: true},
	)
	require.Equal(t, 1300.0, CalculateVolume(withExcluded), "warmup and skipped sets must not change the total")

	require.Equal(t, 0.0, CalculateVolume(nil))
	require.Equal(t, 0.0, CalculateVolume([]models.SetLog{{Weight: 100, Reps: 5, IsWarmup: true}}))
}

func TestCheckForPR(t *testing.T) {
	check := CheckForPR(105, 8, 100, 10)
	require.True(t, check.WeightPR)
	require.False(t, check.RepsPR)

	check = CheckForPR(95, 12, 100, 10)
	require.False(t, check.WeightPR)
	require.True(t, check.RepsPR)

	check = CheckForPR(105, 12, 100, 10)
	require.True(t, check.WeightPR, "weight and reps PRs fire independently")
	require.True(t, check.RepsPR)

	check = CheckForPR(100, 10, 100, 10)
	require.False(t, check.WeightPR, "equal values are not records")
	require.False(t, check.RepsPR)

	check = CheckForPR(0, 0, 100, 10)
	require.False(t, check.WeightPR)
	require.False(t, check.RepsPR)
}

func TestCompareWeeksZeroBaseline(t *testing.T) {
	comparison := CompareWeeks(WeekMetrics{}, WeekMetrics{})
	require.Equal(t, 0.0, comparison.VolumeChange, "zero against zero yields 0, not NaN")

	comparison = CompareWeeks(WeekMetrics{Volume: 100}, WeekMetrics{Volume: 0})
	require.Equal(t, 100.0, comparison.VolumeChange)

	comparison = CompareWeeks(WeekMetrics{Volume: 150, Sets: 30}, WeekMetrics{Volume: 100, Sets: 40})
	require.Equal(t, 50.0, comparison.VolumeChange)
	require.Equal(t, -25.0, comparison.SetsChange)
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "0m", FormatDuration(0))
	require.Equal(t, "0m", FormatDuration(-5))
	require.Equal(t, "45m", FormatDuration(45*60))
	require.Equal(t, "59m", FormatDuration(3599))
	require.Equal(t, "1h 0m", FormatDuration(3600))
	require.Equal(t, "1h 5m", FormatDuration(3900))
	require.Equal(t, "2h 30m", FormatDuration(9000))
}
