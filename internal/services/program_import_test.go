package services

import (
	"strings"
	"testing"

	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/stretchr/testify/require"
)

type stubImportExerciseStore struct {
	known   map[string]models.Exercise
	created []models.Exercise
}

func (stub *stubImportExerciseStore) FindByNameInsensitive(_ string, name string) (models.Exercise, bool, error) {
	exercise, ok := stub.known[strings.ToLower(strings.TrimSpace(name))]
	return exercise, ok, nil
}

func (stub *stubImportExerciseStore) Create(exercise *models.Exercise) error {
	stub.created = append(stub.created, *exercise)
	// Mirror the store: an inserted exercise is visible to later lookups.
	stub.known[strings.ToLower(exercise.Name)] = *exercise
	return nil
}

type stubProgramWriter struct {
	programs []models.Program
}

func (stub *stubProgramWriter) Create(program *models.Program) error {
	stub.programs = append(stub.programs, *program)
	return nil
}

type stubTemplateWriter struct {
	templates []models.WorkoutTemplate
}

func (stub *stubTemplateWriter) Create(template *models.WorkoutTemplate) error {
	stub.templates = append(stub.templates, *template)
	return nil
}

func TestImportGeneratedProgram(t *testing.T) {
	exercises := &stubImportExerciseStore{
		known: map[string]models.Exercise{
			"bench press": {ID: "ex-bench", Name: "Bench Press", IsSystem: true},
		},
	}
	programs := &stubProgramWriter{}
	templates := &stubTemplateWriter{}
	service := NewProgramImportService(exercises, programs, templates, quietLogger())

	request := GeneratedProgramRequest{Goal: "strength", DaysPerWeek: 2, ExperienceLevel: "intermediate"}
	response := GeneratedProgram{
		Name:           "Strength Block",
		Description:    "Two day upper focus",
		WeeklySchedule: "Mon/Thu",
		Workouts: []GeneratedWorkout{
			{
				Name: "Upper A",
				Day:  1,
				Exercises: []GeneratedExercise{
					{Name: "  BENCH PRESS ", Sets: 5, Reps: "5", RestSeconds: 180},
					{Name: "Cable Y-Raise", Sets: 3, Reps: "12-15", RestSeconds: 60},
				},
			},
			{
				Name: "Upper B",
				Day:  4,
				Exercises: []GeneratedExercise{
					{Name: "Cable Y-Raise", Sets: 3, Reps: "15", RestSeconds: 60},
				},
			},
		},
	}

	program, created, err := service.ImportGeneratedProgram("user-1", request, response)
	require.NoError(t, err)
	require.Equal(t, "Strength Block", program.Name)
	require.Contains(t, program.GenerationInputs, `"goal":"strength"`)
	require.Len(t, created, 2)

	// The known name resolves case-insensitively despite whitespace.
	require.Equal(t, "ex-bench", created[0].Exercises[0].ExerciseID)

	// The unknown exercise is created exactly once as a user-owned
	// placeholder, then resolved on its second appearance.
	require.Len(t, exercises.created, 1)
	require.Equal(t, created[0].Exercises[1].ExerciseID, created[1].Exercises[0].ExerciseID)
	placeholder := exercises.created[0]
	require.Equal(t, "Cable Y-Raise", placeholder.Name)
	require.Equal(t, "user-1", placeholder.UserID)
	require.Equal(t, models.MuscleUnknown, placeholder.PrimaryMuscle)
	require.Equal(t, models.EquipmentUnknown, placeholder.Equipment)
	require.False(t, placeholder.IsSystem)

	require.NotNil(t, created[0].DayOfWeek)
	require.Equal(t, 1, *created[0].DayOfWeek)
	require.Equal(t, &program.ID, created[1].ProgramID)
}
