package db

import (
	"errors"

	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) FindByID(exerciseID string) (models.Exercise, error) {
	var exercise models.Exercise
	if err := repo.database.First(&exercise, "id = ?", exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Exercise{}, ErrExerciseNotFound
		}
		return models.Exercise{}, err
	}
	return exercise, nil
}

// FindByNameInsensitive resolves an exercise by case-insensitive exact
// name match among system exercises and the user's own.
func (repo *ExerciseRepository) FindByNameInsensitive(userID string, name string) (models.Exercise, bool, error) {
	var exercise models.Exercise
	result := repo.database.
		Where("lower(trim(name)) = lower(trim(?))", name).
		Where("is_system = ? OR user_id = ?", true, userID).
		Order("is_system DESC").
		Limit(1).
		Find(&exercise)
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Exercise{}, false, nil
	}
	return exercise, true, nil
}

func (repo *ExerciseRepository) ListForUser(userID string) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("is_system = ? OR user_id = ?", true, userID).
		Order("name ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) CountSystem() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Exercise{}).Where("is_system = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountSetLogs reports how many logged sets reference the exercise.
// User exercises become immutable once this is non-zero.
func (repo *ExerciseRepository) CountSetLogs(exerciseID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SetLog{}).Where("exercise_id = ?", exerciseID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exercise).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "exercises", exercise.ID, exercise)
	})
}

func (repo *ExerciseRepository) Update(exercise *models.Exercise) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(exercise).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpUpdate, "exercises", exercise.ID, exercise)
	})
}
