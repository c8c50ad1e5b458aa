package services

import (
	"time"

	"github.com/mkarpovich/liftlog/internal/models"
)

type WeeklySetReader interface {
	ListWorkingSetsBetween(userID string, from, to time.Time) ([]models.SetLog, error)
}

type WeeklySessionReader interface {
	ListForUser(userID string, limit int) ([]models.WorkoutSession, error)
}

// WeeklyStatsService builds week aggregates for the read-side report
// screens and feeds CompareWeeks.
type WeeklyStatsService struct {
	sets     WeeklySetReader
	sessions WeeklySessionReader
}

func NewWeeklyStatsService(sets WeeklySetReader, sessions WeeklySessionReader) *WeeklyStatsService {
	return &WeeklyStatsService{sets: sets, sessions: sessions}
}

// BuildWeekMetrics aggregates working sets and completed sessions whose
// activity falls within [weekStart, weekStart+7d).
func (service *WeeklyStatsService) BuildWeekMetrics(userID string, weekStart time.Time) (WeekMetrics, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)

	sets, err := service.sets.ListWorkingSetsBetween(userID, weekStart, weekEnd)
	if err != nil {
		return WeekMetrics{}, err
	}

	metrics := WeekMetrics{
		Volume: CalculateVolume(sets),
		Sets:   len(sets),
	}

	sessions, err := service.sessions.ListForUser(userID, 0)
	if err != nil {
		return WeekMetrics{}, err
	}
	for _, session := range sessions {
		if session.StartedAt.Before(weekStart) || !session.StartedAt.Before(weekEnd) {
			continue
		}
		if session.CompletedAt == nil {
			continue
		}
		metrics.Sessions++
		metrics.DurationSeconds += session.DurationSeconds
	}

	return metrics, nil
}

// CompareToPreviousWeek reports the change of the given week against
// the week before it.
func (service *WeeklyStatsService) CompareToPreviousWeek(userID string, weekStart time.Time) (WeekComparison, error) {
	current, err := service.BuildWeekMetrics(userID, weekStart)
	if err != nil {
		return WeekComparison{}, err
	}
	previous, err := service.BuildWeekMetrics(userID, weekStart.AddDate(0, 0, -7))
	if err != nil {
		return WeekComparison{}, err
	}
	return CompareWeeks(current, previous), nil
}
