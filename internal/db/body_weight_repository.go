package db

import (
	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

// BodyWeightRepository keeps body weight local-only: the remote sink
// has no mapped table for it, so no sync operations are queued.
type BodyWeightRepository struct {
	database *gorm.DB
}

func NewBodyWeightRepository(database *gorm.DB) *BodyWeightRepository {
	return &BodyWeightRepository{database: database}
}

// Upsert writes the single (user, date) row, replacing any earlier
// measurement for the same day. Last writer wins.
func (repo *BodyWeightRepository) Upsert(userID string, date string, weightKg float64, notes string) (models.BodyWeightLog, error) {
	var entry models.BodyWeightLog
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND date = ?", userID, date).Limit(1).Find(&entry)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			entry.WeightKg = weightKg
			entry.Notes = notes
			return tx.Save(&entry).Error
		}

		entry = models.BodyWeightLog{
			ID:       uuid.NewString(),
			UserID:   userID,
			Date:     date,
			WeightKg: weightKg,
			Notes:    notes,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return models.BodyWeightLog{}, err
	}
	return entry, nil
}

func (repo *BodyWeightRepository) Get(userID string, date string) (models.BodyWeightLog, bool, error) {
	var entry models.BodyWeightLog
	result := repo.database.Where("user_id = ? AND date = ?", userID, date).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.BodyWeightLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.BodyWeightLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *BodyWeightRepository) ListForUser(userID string, limit int) ([]models.BodyWeightLog, error) {
	entries := make([]models.BodyWeightLog, 0)
	query := repo.database.Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
