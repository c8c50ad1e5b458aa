package models

import "time"

const (
	MuscleChest      = "chest"
	MuscleBack       = "back"
	MuscleShoulders  = "shoulders"
	MuscleBiceps     = "biceps"
	MuscleTriceps    = "triceps"
	MuscleForearms   = "forearms"
	MuscleQuads      = "quads"
	MuscleHamstrings = "hamstrings"
	MuscleGlutes     = "glutes"
	MuscleCalves     = "calves"
	MuscleCore       = "core"
	MuscleUnknown    = "unknown"
)

const (
	EquipmentBarbell    = "barbell"
	EquipmentDumbbell   = "dumbbell"
	EquipmentMachine    = "machine"
	EquipmentCable      = "cable"
	EquipmentBodyweight = "bodyweight"
	EquipmentKettlebell = "kettlebell"
	EquipmentBand       = "band"
	EquipmentUnknown    = "unknown"
)

const (
	PatternSquat     = "squat"
	PatternHinge     = "hinge"
	PatternPushH     = "horizontal_push"
	PatternPullH     = "horizontal_pull"
	PatternPushV     = "vertical_push"
	PatternPullV     = "vertical_pull"
	PatternLunge     = "lunge"
	PatternCarry     = "carry"
	PatternIsolation = "isolation"
)

// Exercise rows are immutable once referenced by logged sets; only
// user-owned, non-system exercises may be edited afterwards.
type Exercise struct {
	ID               string   `gorm:"primaryKey"`
	Name             string   `gorm:"not null"`
	PrimaryMuscle    string   `gorm:"not null;default:unknown"`
	SecondaryMuscles []string `gorm:"serializer:json"`
	Equipment        string   `gorm:"not null;default:unknown"`
	MovementPattern  string
	IsCompound       bool   `gorm:"not null;default:false"`
	IsUnilateral     bool   `gorm:"not null;default:false"`
	IsSystem         bool   `gorm:"not null;default:false"`
	UserID           string `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Exercise) TableName() string {
	return "exercises"
}
