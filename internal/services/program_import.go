package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/sirupsen/logrus"
)

// GeneratedProgramRequest mirrors the parameters sent to the external
// program-generation collaborator.
type GeneratedProgramRequest struct {
	Goal                   string   `json:"goal"`
	DaysPerWeek            int      `json:"days_per_week"`
	ExperienceLevel        string   `json:"experience_level"`
	SessionDurationMinutes int      `json:"session_duration_minutes"`
	Equipment              []string `json:"equipment"`
	FocusAreas             []string `json:"focus_areas,omitempty"`
	Injuries               []string `json:"injuries,omitempty"`
}

// GeneratedProgram is the structured response. It is untrusted input:
// exercise names may or may not resolve to known exercises.
type GeneratedProgram struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	WeeklySchedule string             `json:"weekly_schedule"`
	Workouts       []GeneratedWorkout `json:"workouts"`
	GeneralTips    []string           `json:"general_tips,omitempty"`
}

type GeneratedWorkout struct {
	Name            string              `json:"name"`
	Day             int                 `json:"day"`
	DurationMinutes int                 `json:"duration_minutes"`
	Exercises       []GeneratedExercise `json:"exercises"`
}

type GeneratedExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	Notes       string `json:"notes,omitempty"`
}

type ImportExerciseStore interface {
	FindByNameInsensitive(userID string, name string) (models.Exercise, bool, error)
	Create(exercise *models.Exercise) error
}

type ImportProgramWriter interface {
	Create(program *models.Program) error
}

type ImportTemplateWriter interface {
	Create(template *models.WorkoutTemplate) error
}

// ProgramImportService turns a generated program into a stored program
// with one workout template per workout.
type ProgramImportService struct {
	exercises ImportExerciseStore
	programs  ImportProgramWriter
	templates ImportTemplateWriter
	log       *logrus.Logger
}

func NewProgramImportService(
	exercises ImportExerciseStore,
	programs ImportProgramWriter,
	templates ImportTemplateWriter,
	log *logrus.Logger,
) *ProgramImportService {
	if log == nil {
		log = logrus.New()
	}
	return &ProgramImportService{
		exercises: exercises,
		programs:  programs,
		templates: templates,
		log:       log,
	}
}

// ImportGeneratedProgram persists the program and its templates,
// resolving each exercise name by case-insensitive exact match or
// creating a user-owned placeholder with unknown muscle and equipment.
func (service *ProgramImportService) ImportGeneratedProgram(
	userID string,
	request GeneratedProgramRequest,
	response GeneratedProgram,
) (models.Program, []models.WorkoutTemplate, error) {
	inputs, err := json.Marshal(request)
	if err != nil {
		return models.Program{}, nil, fmt.Errorf("encode generation inputs: %w", err)
	}

	program := models.Program{
		ID:               uuid.NewString(),
		UserID:           userID,
		Name:             response.Name,
		Description:      response.Description,
		WeeklySchedule:   response.WeeklySchedule,
		GenerationInputs: string(inputs),
	}
	if err := service.programs.Create(&program); err != nil {
		return models.Program{}, nil, fmt.Errorf("create program: %w", err)
	}

	templates := make([]models.WorkoutTemplate, 0, len(response.Workouts))
	for workoutIndex, workout := range response.Workouts {
		template := models.WorkoutTemplate{
			ID:                    uuid.NewString(),
			UserID:                userID,
			ProgramID:             &program.ID,
			Name:                  workout.Name,
			OrderIndex:            workoutIndex,
			TargetDurationMinutes: workout.DurationMinutes,
		}
		if workout.Day >= 0 && workout.Day <= 6 {
			day := workout.Day
			template.DayOfWeek = &day
		}

		for exerciseIndex, generated := range workout.Exercises {
			exercise, err := service.resolveExercise(userID, generated.Name)
			if err != nil {
				return models.Program{}, nil, err
			}
			template.Exercises = append(template.Exercises, models.WorkoutTemplateExercise{
				ID:                uuid.NewString(),
				WorkoutTemplateID: template.ID,
				ExerciseID:        exercise.ID,
				OrderIndex:        exerciseIndex,
				TargetSets:        generated.Sets,
				TargetReps:        generated.Reps,
				RestSeconds:       generated.RestSeconds,
				Notes:             generated.Notes,
			})
		}

		if err := service.templates.Create(&template); err != nil {
			return models.Program{}, nil, fmt.Errorf("create template %q: %w", workout.Name, err)
		}
		templates = append(templates, template)
	}

	return program, templates, nil
}

func (service *ProgramImportService) resolveExercise(userID string, name string) (models.Exercise, error) {
	trimmed := strings.TrimSpace(name)
	exercise, found, err := service.exercises.FindByNameInsensitive(userID, trimmed)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("resolve exercise %q: %w", trimmed, err)
	}
	if found {
		return exercise, nil
	}

	placeholder := models.Exercise{
		ID:            uuid.NewString(),
		Name:          trimmed,
		PrimaryMuscle: models.MuscleUnknown,
		Equipment:     models.EquipmentUnknown,
		UserID:        userID,
	}
	if err := service.exercises.Create(&placeholder); err != nil {
		return models.Exercise{}, fmt.Errorf("create placeholder exercise %q: %w", trimmed, err)
	}
	service.log.WithField("exercise", trimmed).Info("created placeholder exercise for generated program")
	return placeholder, nil
}
