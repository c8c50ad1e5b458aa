package models

import "time"

// Well-known user_settings keys. The table itself is an opaque
// key→string map used in lieu of dedicated profile/targets tables.
const (
	SettingNutritionTargets = "nutrition_targets"
	SettingOfflineMode      = "offline_mode"
	SettingProfile          = "profile"
)

type UserSetting struct {
	UserID    string `gorm:"primaryKey"`
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (UserSetting) TableName() string {
	return "user_settings"
}
