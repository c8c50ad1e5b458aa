package models

import "time"

// Program groups workout templates into a weekly plan. For generated
// programs, GenerationInputs keeps the request parameters as an opaque
// JSON blob on the row.
type Program struct {
	ID               string `gorm:"primaryKey"`
	UserID           string `gorm:"not null;index"`
	Name             string `gorm:"not null"`
	Description      string
	WeeklySchedule   string
	GenerationInputs string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Program) TableName() string {
	return "programs"
}
