package db

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

// SeedSystemExercises inserts the built-in exercise catalog once.
// Idempotent across restarts: it only runs when the system-exercise
// count is zero. Seed rows are not queued for sync, the remote side
// ships the same catalog.
func SeedSystemExercises(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Exercise{}).Where("is_system = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("count system exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := systemExerciseCatalog()
	return database.Transaction(func(tx *gorm.DB) error {
		for index := range catalog {
			catalog[index].ID = uuid.NewString()
			catalog[index].IsSystem = true
		}
		if err := tx.Create(&catalog).Error; err != nil {
			return fmt.Errorf("insert system exercises: %w", err)
		}
		return nil
	})
}

func systemExerciseCatalog() []models.Exercise {
	return []models.Exercise{
		{Name: "Barbell Back Squat", PrimaryMuscle: models.MuscleQuads, SecondaryMuscles: []string{models.MuscleGlutes, models.MuscleCore}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternSquat, IsCompound: true},
		{Name: "Front Squat", PrimaryMuscle: models.MuscleQuads, SecondaryMuscles: []string{models.MuscleCore}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternSquat, IsCompound: true},
		{Name: "Deadlift", PrimaryMuscle: models.MuscleHamstrings, SecondaryMuscles: []string{models.MuscleGlutes, models.MuscleBack}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternHinge, IsCompound: true},
		{Name: "Romanian Deadlift", PrimaryMuscle: models.MuscleHamstrings, SecondaryMuscles: []string{models.MuscleGlutes}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternHinge, IsCompound: true},
		{Name: "Bench Press", PrimaryMuscle: models.MuscleChest, SecondaryMuscles: []string{models.MuscleTriceps, models.MuscleShoulders}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternPushH, IsCompound: true},
		{Name: "Incline Dumbbell Press", PrimaryMuscle: models.MuscleChest, SecondaryMuscles: []string{models.MuscleShoulders, models.MuscleTriceps}, Equipment: models.EquipmentDumbbell, MovementPattern: models.PatternPushH, IsCompound: true},
		{Name: "Overhead Press", PrimaryMuscle: models.MuscleShoulders, SecondaryMuscles: []string{models.MuscleTriceps, models.MuscleCore}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternPushV, IsCompound: true},
		{Name: "Pull-Up", PrimaryMuscle: models.MuscleBack, SecondaryMuscles: []string{models.MuscleBiceps}, Equipment: models.EquipmentBodyweight, MovementPattern: models.PatternPullV, IsCompound: true},
		{Name: "Lat Pulldown", PrimaryMuscle: models.MuscleBack, SecondaryMuscles: []string{models.MuscleBiceps}, Equipment: models.EquipmentCable, MovementPattern: models.PatternPullV, IsCompound: true},
		{Name: "Barbell Row", PrimaryMuscle: models.MuscleBack, SecondaryMuscles: []string{models.MuscleBiceps, models.MuscleForearms}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternPullH, IsCompound: true},
		{Name: "Seated Cable Row", PrimaryMuscle: models.MuscleBack, SecondaryMuscles: []string{models.MuscleBiceps}, Equipment: models.EquipmentCable, MovementPattern: models.PatternPullH, IsCompound: true},
		{Name: "Dumbbell Lunge", PrimaryMuscle: models.MuscleQuads, SecondaryMuscles: []string{models.MuscleGlutes}, Equipment: models.EquipmentDumbbell, MovementPattern: models.PatternLunge, IsCompound: true, IsUnilateral: true},
		{Name: "Bulgarian Split Squat", PrimaryMuscle: models.MuscleQuads, SecondaryMuscles: []string{models.MuscleGlutes}, Equipment: models.EquipmentDumbbell, MovementPattern: models.PatternLunge, IsCompound: true, IsUnilateral: true},
		{Name: "Hip Thrust", PrimaryMuscle: models.MuscleGlutes, SecondaryMuscles: []string{models.MuscleHamstrings}, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternHinge, IsCompound: true},
		{Name: "Leg Press", PrimaryMuscle: models.MuscleQuads, SecondaryMuscles: []string{models.MuscleGlutes}, Equipment: models.EquipmentMachine, MovementPattern: models.PatternSquat, IsCompound: true},
		{Name: "Leg Curl", PrimaryMuscle: models.MuscleHamstrings, Equipment: models.EquipmentMachine, MovementPattern: models.PatternIsolation},
		{Name: "Leg Extension", PrimaryMuscle: models.MuscleQuads, Equipment: models.EquipmentMachine, MovementPattern: models.PatternIsolation},
		{Name: "Standing Calf Raise", PrimaryMuscle: models.MuscleCalves, Equipment: models.EquipmentMachine, MovementPattern: models.PatternIsolation},
		{Name: "Dumbbell Curl", PrimaryMuscle: models.MuscleBiceps, SecondaryMuscles: []string{models.MuscleForearms}, Equipment: models.EquipmentDumbbell, MovementPattern: models.PatternIsolation},
		{Name: "Hammer Curl", PrimaryMuscle: models.MuscleBiceps, SecondaryMuscles: []string{models.MuscleForearms}, Equipment: models.EquipmentDumbbell, MovementPattern: models.PatternIsolation},
		{Name: "Triceps Pushdown", PrimaryMuscle: models.MuscleTriceps, Equipment: models.EquipmentCable, MovementPattern: models.PatternIsolation},
		{Name: "Skull Crusher", PrimaryMuscle: models.MuscleTriceps, Equipment: models.EquipmentBarbell, MovementPattern: models.PatternIsolation},
		{Name: "Lateral Raise", PrimaryMuscle: models.MuscleShoulders, Equipment: models.EquipmentDumbbell, MovementPattern: models.PatternIsolation},
		{Name: "Face Pull", PrimaryMuscle: models.MuscleShoulders, SecondaryMuscles: []string{models.MuscleBack}, Equipment: models.EquipmentCable, MovementPattern: models.PatternPullH},
		{Name: "Plank", PrimaryMuscle: models.MuscleCore, Equipment: models.EquipmentBodyweight, MovementPattern: models.PatternIsolation},
		{Name: "Hanging Leg Raise", PrimaryMuscle: models.MuscleCore, Equipment: models.EquipmentBodyweight, MovementPattern: models.PatternIsolation},
		{Name: "Farmer Carry", PrimaryMuscle: models.MuscleForearms, SecondaryMuscles: []string{models.MuscleCore}, Equipment: models.EquipmentDumbbell, MovementPattern: models.PatternCarry, IsCompound: true},
		{Name: "Kettlebell Swing", PrimaryMuscle: models.MuscleGlutes, SecondaryMuscles: []string{models.MuscleHamstrings, models.MuscleCore}, Equipment: models.EquipmentKettlebell, MovementPattern: models.PatternHinge, IsCompound: true},
	}
}
