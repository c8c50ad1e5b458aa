package models

import "time"

// BodyWeightLog keeps one row per (user_id, date); writes for the same
// day upsert in place, last writer wins.
type BodyWeightLog struct {
	ID        string  `gorm:"primaryKey"`
	UserID    string  `gorm:"not null;uniqueIndex:uidx_weight_user_date"`
	Date      string  `gorm:"not null;uniqueIndex:uidx_weight_user_date"`
	WeightKg  float64 `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BodyWeightLog) TableName() string {
	return "body_weight_logs"
}
