package models

import "time"

const (
	WeightUnitKg = "kg"
	WeightUnitLb = "lb"
)

// SetLog rows are append-only. A skipped set occupies a slot in the
// displayed list but carries zero reps/weight and is excluded from the
// numbering used by volume and PR math.
type SetLog struct {
	ID               string  `gorm:"primaryKey"`
	WorkoutSessionID string  `gorm:"not null;index"`
	ExerciseID       string  `gorm:"not null;index"`
	SetNumber        int     `gorm:"not null"`
	Reps             int     `gorm:"not null;default:0"`
	Weight           float64 `gorm:"not null;default:0"`
	WeightUnit       string  `gorm:"not null;default:kg"`
	RPE              *float64
	IsWarmup         bool `gorm:"not null;default:false"`
	IsDropset        bool `gorm:"not null;default:false"`
	IsFailure        bool `gorm:"not null;default:false"`
	Skipped          bool `gorm:"not null;default:false"`
	CreatedAt        time.Time
}

func (SetLog) TableName() string {
	return "set_logs"
}

// IsWorkingSet reports whether the set counts toward volume and PR
// calculations.
func (set SetLog) IsWorkingSet() bool {
	return !set.IsWarmup && !set.Skipped
}
