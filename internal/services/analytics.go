package services

import (
	"fmt"
	"math"

	"github.com/mkarpovich/liftlog/internal/models"
)

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

// EstimateOneRepMax estimates a one-rep max from a weight/reps pair
// using the Brzycki formula, rounded to one decimal. Returns the weight
// unchanged for a single rep and 0 for non-positive inputs. Rep counts
// of 37 and above sit outside the formula's domain and return 0.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	if reps >= 37 {
		return 0
	}
	return roundToTenth(weight * 36 / float64(37-reps))
}

// CalculateVolume sums weight*reps over working sets. Warmup and
// skipped sets contribute nothing.
func CalculateVolume(sets []models.SetLog) float64 {
	var total float64
	for _, set := range sets {
		if !set.IsWorkingSet() {
			continue
		}
		total += set.Weight * float64(set.Reps)
	}
	return total
}

// PRCheck reports which records a set broke. Weight and reps PRs are
// independent: one set can be both, either, or neither.
type PRCheck struct {
	WeightPR bool
	RepsPR   bool
}

// CheckForPR compares a set against the single best historical values.
// A PR requires known history and a strictly greater positive value.
func CheckForPR(weight float64, reps int, previousMaxWeight float64, previousMaxReps int) PRCheck {
	return PRCheck{
		WeightPR: weight > 0 && weight > previousMaxWeight,
		RepsPR:   reps > 0 && reps > previousMaxReps,
	}
}

// WeekMetrics aggregates one week's training load.
type WeekMetrics struct {
	Volume          float64
	Sets            int
	Sessions        int
	DurationSeconds int
}

// WeekComparison holds percentage change per metric, current against
// previous.
type WeekComparison struct {
	VolumeChange   float64
	SetsChange     float64
	SessionsChange float64
	DurationChange float64
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return roundToTenth((current - previous) / previous * 100)
}

// CompareWeeks reports the week-over-week change of each metric. A zero
// prior value maps to 100 when the current value is positive and 0
// otherwise, avoiding division by zero.
func CompareWeeks(current WeekMetrics, previous WeekMetrics) WeekComparison {
	return WeekComparison{
		VolumeChange:   percentChange(current.Volume, previous.Volume),
		SetsChange:     percentChange(float64(current.Sets), float64(previous.Sets)),
		SessionsChange: percentChange(float64(current.Sessions), float64(previous.Sessions)),
		DurationChange: percentChange(float64(current.DurationSeconds), float64(previous.DurationSeconds)),
	}
}

// FormatDuration renders a second count at whole-minute granularity,
// adding an hour component from one hour up.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	if seconds >= 3600 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
