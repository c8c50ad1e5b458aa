package models

import "time"

type WorkoutTemplate struct {
	ID                    string  `gorm:"primaryKey"`
	UserID                string  `gorm:"not null;index"`
	ProgramID             *string `gorm:"index"`
	Name                  string  `gorm:"not null"`
	DayOfWeek             *int
	OrderIndex            int `gorm:"not null;default:0"`
	TargetDurationMinutes int
	Exercises             []WorkoutTemplateExercise `gorm:"foreignKey:WorkoutTemplateID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (WorkoutTemplate) TableName() string {
	return "workout_templates"
}

type WorkoutTemplateExercise struct {
	ID                string `gorm:"primaryKey"`
	WorkoutTemplateID string `gorm:"not null;index"`
	ExerciseID        string `gorm:"not null"`
	OrderIndex        int    `gorm:"not null;default:0"`
	TargetSets        int    `gorm:"not null;default:3"`
	TargetReps        string `gorm:"not null;default:8-12"`
	TargetRPE         *float64
	RestSeconds       int `gorm:"not null;default:90"`
	SupersetGroup     *int
	Tempo             string
	Notes             string
}

func (WorkoutTemplateExercise) TableName() string {
	return "workout_template_exercises"
}
