package db

import (
	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository is an opaque key→string map per user, used for
// profile data, nutrition targets and offline-mode flags. Settings are
// device-local and never queued for sync.
type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) Get(userID string, key string) (string, bool, error) {
	var setting models.UserSetting
	result := repo.database.Where("user_id = ? AND key = ?", userID, key).Limit(1).Find(&setting)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return setting.Value, true, nil
}

func (repo *SettingsRepository) Set(userID string, key string, value string) error {
	setting := models.UserSetting{UserID: userID, Key: key, Value: value}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

func (repo *SettingsRepository) All(userID string) (map[string]string, error) {
	settings := make([]models.UserSetting, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&settings).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}
