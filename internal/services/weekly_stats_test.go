package services

import (
	"testing"
	"time"

	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/stretchr/testify/require"
)

type stubWeeklySetReader struct {
	byWeek map[string][]models.SetLog
}

func (stub *stubWeeklySetReader) ListWorkingSetsBetween(_ string, from, _ time.Time) ([]models.SetLog, error) {
	return stub.byWeek[from.Format("2006-01-02")], nil
}

type stubWeeklySessionReader struct {
	sessions []models.WorkoutSession
}

func (stub *stubWeeklySessionReader) ListForUser(string, int) ([]models.WorkoutSession, error) {
	return stub.sessions, nil
}

func TestBuildWeekMetrics(t *testing.T) {
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	completedAt := weekStart.Add(26 * time.Hour)
	staleStart := weekStart.AddDate(0, 0, -10)

	sets := &stubWeeklySetReader{byWeek: map[string][]models.SetLog{
		"2026-03-02": {
			{Weight: 100, Reps: 5},
			{Weight: 80, Reps: 8},
		},
	}}
	sessions := &stubWeeklySessionReader{sessions: []models.WorkoutSession{
		{StartedAt: weekStart.Add(25 * time.Hour), CompletedAt: &completedAt, DurationSeconds: 3600},
		{StartedAt: weekStart.Add(49 * time.Hour)}, // incomplete, excluded
		{StartedAt: staleStart, CompletedAt: &completedAt, DurationSeconds: 1800},
	}}

	service := NewWeeklyStatsService(sets, sessions)
	metrics, err := service.BuildWeekMetrics("user-1", weekStart)
	require.NoError(t, err)
	require.Equal(t, 1140.0, metrics.Volume)
	require.Equal(t, 2, metrics.Sets)
	require.Equal(t, 1, metrics.Sessions)
	require.Equal(t, 3600, metrics.DurationSeconds)
}

func TestCompareToPreviousWeek(t *testing.T) {
	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	sets := &stubWeeklySetReader{byWeek: map[string][]models.SetLog{
		"2026-03-09": {{Weight: 100, Reps: 6}},
		"2026-03-02": {{Weight: 100, Reps: 4}},
	}}
	service := NewWeeklyStatsService(sets, &stubWeeklySessionReader{})

	comparison, err := service.CompareToPreviousWeek("user-1", weekStart)
	require.NoError(t, err)
	require.Equal(t, 50.0, comparison.VolumeChange)
	require.Equal(t, 0.0, comparison.SessionsChange)
}
