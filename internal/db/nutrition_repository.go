package db

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

var ErrNutritionEntryNotFound = errors.New("nutrition entry not found")

type NutritionRepository struct {
	database *gorm.DB
}

func NewNutritionRepository(database *gorm.DB) *NutritionRepository {
	return &NutritionRepository{database: database}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetOrCreateDay returns the unique (user, date) day row, creating it
// with the given targets when missing. A concurrent creator losing the
// unique-index race falls back to fetching the winner's row, so two
// quick calls for the same key never produce duplicates.
func (repo *NutritionRepository) GetOrCreateDay(userID string, date string, targets models.NutritionTargets) (models.NutritionDay, error) {
	day, found, err := repo.findDay(userID, date)
	if err != nil {
		return models.NutritionDay{}, err
	}
	if found {
		return day, nil
	}

	day = models.NutritionDay{
		ID:                uuid.NewString(),
		UserID:            userID,
		Date:              date,
		TargetCalories:    targets.Calories,
		TargetProtein:     targets.Protein,
		TargetCarbs:       targets.Carbs,
		TargetFat:         targets.Fat,
		TargetWaterML:     targets.WaterML,
		CalculationMethod: targets.CalculationMethod,
	}
	if day.CalculationMethod == "" {
		day.CalculationMethod = models.TargetMethodManual
	}

	err = repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Entries").Create(&day).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "nutrition_days", day.ID, day)
	})
	if isUniqueViolation(err) {
		existing, found, findErr := repo.findDay(userID, date)
		if findErr != nil {
			return models.NutritionDay{}, findErr
		}
		if !found {
			return models.NutritionDay{}, err
		}
		return existing, nil
	}
	if err != nil {
		return models.NutritionDay{}, err
	}
	return day, nil
}

func (repo *NutritionRepository) findDay(userID string, date string) (models.NutritionDay, bool, error) {
	var day models.NutritionDay
	result := repo.database.
		Preload("Entries", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC, created_at ASC")
		}).
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&day)
	if result.Error != nil {
		return models.NutritionDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.NutritionDay{}, false, nil
	}
	return day, true, nil
}

func (repo *NutritionRepository) GetDay(userID string, date string) (models.NutritionDay, bool, error) {
	return repo.findDay(userID, date)
}

func (repo *NutritionRepository) UpdateDayTargets(dayID string, targets models.NutritionTargets) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var day models.NutritionDay
		if err := tx.First(&day, "id = ?", dayID).Error; err != nil {
			return err
		}
		day.TargetCalories = targets.Calories
		day.TargetProtein = targets.Protein
		day.TargetCarbs = targets.Carbs
		day.TargetFat = targets.Fat
		day.TargetWaterML = targets.WaterML
		day.CalculationMethod = targets.CalculationMethod
		if err := tx.Omit("Entries").Save(&day).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpUpdate, "nutrition_days", day.ID, day)
	})
}

func (repo *NutritionRepository) CreateEntry(entry *models.NutritionEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "nutrition_entries", entry.ID, entry)
	})
}

func (repo *NutritionRepository) UpdateEntry(entry *models.NutritionEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(entry).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpUpdate, "nutrition_entries", entry.ID, entry)
	})
}

func (repo *NutritionRepository) DeleteEntry(entryID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.NutritionEntry{}, "id = ?", entryID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNutritionEntryNotFound
		}
		return appendSyncOperation(tx, models.SyncOpDelete, "nutrition_entries", entryID, map[string]string{"id": entryID})
	})
}

func (repo *NutritionRepository) AddWater(water *models.WaterLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(water).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "water_logs", water.ID, water)
	})
}

func (repo *NutritionRepository) ListWater(userID string, date string) ([]models.WaterLog, error) {
	logs := make([]models.WaterLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *NutritionRepository) CreateMealTemplate(meal *models.MealTemplate) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "meal_templates", meal.ID, meal)
	})
}

func (repo *NutritionRepository) ListMealTemplates(userID string) ([]models.MealTemplate, error) {
	meals := make([]models.MealTemplate, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("name ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *NutritionRepository) DeleteMealTemplate(mealID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.MealTemplate{}, "id = ?", mealID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return appendSyncOperation(tx, models.SyncOpDelete, "meal_templates", mealID, map[string]string{"id": mealID})
	})
}
