package models

import "time"

// SnapshotSchemaVersion tags the serialized template snapshot so later
// readers can tell which shape they are deserializing.
const SnapshotSchemaVersion = 1

// TemplateSnapshot is a frozen copy of a template captured at session
// start. Later template edits never alter history; quick workouts grow
// synthetic snapshot entries as exercises are added.
type TemplateSnapshot struct {
	SchemaVersion int                `json:"schema_version"`
	Name          string             `json:"name"`
	Exercises     []SnapshotExercise `json:"exercises"`
}

type SnapshotExercise struct {
	ExerciseID    string `json:"exercise_id"`
	ExerciseName  string `json:"exercise_name"`
	OrderIndex    int    `json:"order_index"`
	TargetSets    int    `json:"target_sets"`
	TargetReps    string `json:"target_reps"`
	RestSeconds   int    `json:"rest_seconds"`
	SupersetGroup *int   `json:"superset_group,omitempty"`
	Tempo         string `json:"tempo,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// A session with a nil CompletedAt after restart is incomplete: still
// queryable as history, never silently deleted.
type WorkoutSession struct {
	ID                string           `gorm:"primaryKey"`
	UserID            string           `gorm:"not null;index"`
	WorkoutTemplateID *string          `gorm:"index"`
	TemplateSnapshot  TemplateSnapshot `gorm:"serializer:json"`
	StartedAt         time.Time        `gorm:"not null"`
	CompletedAt       *time.Time
	DurationSeconds   int
	Rating            *int
	Notes             string
	SetLogs           []SetLog `gorm:"foreignKey:WorkoutSessionID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (WorkoutSession) TableName() string {
	return "workout_sessions"
}
