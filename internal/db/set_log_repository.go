package db

import (
	"time"

	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

type SetLogRepository struct {
	database *gorm.DB
}

func NewSetLogRepository(database *gorm.DB) *SetLogRepository {
	return &SetLogRepository{database: database}
}

func (repo *SetLogRepository) Create(set *models.SetLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(set).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "set_logs", set.ID, set)
	})
}

func (repo *SetLogRepository) ListBySession(sessionID string) ([]models.SetLog, error) {
	sets := make([]models.SetLog, 0)
	if err := repo.database.
		Where("workout_session_id = ?", sessionID).
		Order("created_at ASC, set_number ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (repo *SetLogRepository) ListBySessionAndExercise(sessionID string, exerciseID string) ([]models.SetLog, error) {
	sets := make([]models.SetLog, 0)
	if err := repo.database.
		Where("workout_session_id = ? AND exercise_id = ?", sessionID, exerciseID).
		Order("created_at ASC, set_number ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

// LastWorkingSets returns the user's most recent working sets for an
// exercise, oldest first, for "last time" display at session start.
func (repo *SetLogRepository) LastWorkingSets(userID string, exerciseID string, limit int) ([]models.SetLog, error) {
	if limit <= 0 {
		limit = 5
	}

	sets := make([]models.SetLog, 0)
	err := repo.database.
		Joins("JOIN workout_sessions ON workout_sessions.id = set_logs.workout_session_id").
		Where("workout_sessions.user_id = ?", userID).
		Where("set_logs.exercise_id = ?", exerciseID).
		Where("set_logs.is_warmup = ? AND set_logs.skipped = ?", false, false).
		Order("set_logs.created_at DESC").
		Limit(limit).
		Find(&sets).Error
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order.
	for left, right := 0, len(sets)-1; left < right; left, right = left+1, right-1 {
		sets[left], sets[right] = sets[right], sets[left]
	}
	return sets, nil
}

type historicalMaxRow struct {
	MaxWeight *float64 `gorm:"column:max_weight"`
	MaxReps   *int     `gorm:"column:max_reps"`
}

// HistoricalMax returns the user's best working-set weight and reps for
// an exercise. found is false when no working sets exist yet.
func (repo *SetLogRepository) HistoricalMax(userID string, exerciseID string) (maxWeight float64, maxReps int, found bool, err error) {
	var row historicalMaxRow
	err = repo.database.
		Model(&models.SetLog{}).
		Select("MAX(set_logs.weight) AS max_weight, MAX(set_logs.reps) AS max_reps").
		Joins("JOIN workout_sessions ON workout_sessions.id = set_logs.workout_session_id").
		Where("workout_sessions.user_id = ?", userID).
		Where("set_logs.exercise_id = ?", exerciseID).
		Where("set_logs.is_warmup = ? AND set_logs.skipped = ?", false, false).
		Scan(&row).Error
	if err != nil {
		return 0, 0, false, err
	}
	if row.MaxWeight == nil || row.MaxReps == nil {
		return 0, 0, false, nil
	}
	return *row.MaxWeight, *row.MaxReps, true, nil
}

// ListWorkingSetsBetween returns working sets logged within [from, to)
// across all of the user's sessions, feeding weekly volume stats.
func (repo *SetLogRepository) ListWorkingSetsBetween(userID string, from, to time.Time) ([]models.SetLog, error) {
	sets := make([]models.SetLog, 0)
	err := repo.database.
		Joins("JOIN workout_sessions ON workout_sessions.id = set_logs.workout_session_id").
		Where("workout_sessions.user_id = ?", userID).
		Where("set_logs.is_warmup = ? AND set_logs.skipped = ?", false, false).
		Where("set_logs.created_at >= ? AND set_logs.created_at < ?", from, to).
		Order("set_logs.created_at ASC").
		Find(&sets).Error
	if err != nil {
		return nil, err
	}
	return sets, nil
}
