package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
)

var (
	ErrExerciseNameEmpty = errors.New("exercise name is empty")
	ErrExerciseReadOnly  = errors.New("exercise is not editable")
)

type ExerciseStore interface {
	FindByID(exerciseID string) (models.Exercise, error)
	ListForUser(userID string) ([]models.Exercise, error)
	CountSetLogs(exerciseID string) (int64, error)
	Create(exercise *models.Exercise) error
	Update(exercise *models.Exercise) error
}

type ExerciseService struct {
	store ExerciseStore
}

func NewExerciseService(store ExerciseStore) *ExerciseService {
	return &ExerciseService{store: store}
}

func (service *ExerciseService) ListForUser(userID string) ([]models.Exercise, error) {
	return service.store.ListForUser(userID)
}

func (service *ExerciseService) CreateUserExercise(userID string, exercise models.Exercise) (models.Exercise, error) {
	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" {
		return models.Exercise{}, ErrExerciseNameEmpty
	}

	exercise.ID = uuid.NewString()
	exercise.UserID = userID
	exercise.IsSystem = false
	if exercise.PrimaryMuscle == "" {
		exercise.PrimaryMuscle = models.MuscleUnknown
	}
	if exercise.Equipment == "" {
		exercise.Equipment = models.EquipmentUnknown
	}
	if err := service.store.Create(&exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

// UpdateUserExercise rejects edits to system exercises, exercises owned
// by someone else, and exercises already referenced by logged sets.
func (service *ExerciseService) UpdateUserExercise(userID string, exercise models.Exercise) error {
	existing, err := service.store.FindByID(exercise.ID)
	if err != nil {
		return err
	}
	if existing.IsSystem || existing.UserID != userID {
		return ErrExerciseReadOnly
	}

	referenced, err := service.store.CountSetLogs(exercise.ID)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return ErrExerciseReadOnly
	}

	exercise.UserID = existing.UserID
	exercise.IsSystem = false
	return service.store.Update(&exercise)
}
