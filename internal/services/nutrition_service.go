package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
)

type NutritionStore interface {
	GetOrCreateDay(userID string, date string, targets models.NutritionTargets) (models.NutritionDay, error)
	GetDay(userID string, date string) (models.NutritionDay, bool, error)
	CreateEntry(entry *models.NutritionEntry) error
	UpdateEntry(entry *models.NutritionEntry) error
	DeleteEntry(entryID string) error
	AddWater(water *models.WaterLog) error
	ListWater(userID string, date string) ([]models.WaterLog, error)
}

type TargetsReader interface {
	Get(userID string, key string) (string, bool, error)
}

// DayTotals aggregates a day's entries against its targets.
type DayTotals struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
	WaterML  int
}

type NutritionService struct {
	store    NutritionStore
	settings TargetsReader
}

func NewNutritionService(store NutritionStore, settings TargetsReader) *NutritionService {
	return &NutritionService{store: store, settings: settings}
}

// currentTargets reads the user's stored targets, falling back to
// zero-valued manual targets when none are configured.
func (service *NutritionService) currentTargets(userID string) models.NutritionTargets {
	raw, found, err := service.settings.Get(userID, models.SettingNutritionTargets)
	if err != nil || !found {
		return models.NutritionTargets{CalculationMethod: models.TargetMethodManual}
	}

	var targets models.NutritionTargets
	if err := json.Unmarshal([]byte(raw), &targets); err != nil {
		return models.NutritionTargets{CalculationMethod: models.TargetMethodManual}
	}
	return targets
}

// GetOrCreateDay returns the unique day row for (user, date), creating
// it with the user's current targets when missing.
func (service *NutritionService) GetOrCreateDay(userID string, date string) (models.NutritionDay, error) {
	return service.store.GetOrCreateDay(userID, date, service.currentTargets(userID))
}

func (service *NutritionService) AddEntry(userID string, date string, entry models.NutritionEntry) (models.NutritionEntry, error) {
	day, err := service.GetOrCreateDay(userID, date)
	if err != nil {
		return models.NutritionEntry{}, fmt.Errorf("resolve nutrition day: %w", err)
	}

	entry.ID = uuid.NewString()
	entry.NutritionDayID = day.ID
	entry.OrderIndex = len(day.Entries)
	if err := service.store.CreateEntry(&entry); err != nil {
		return models.NutritionEntry{}, fmt.Errorf("create nutrition entry: %w", err)
	}
	return entry, nil
}

func (service *NutritionService) UpdateEntry(entry models.NutritionEntry) error {
	return service.store.UpdateEntry(&entry)
}

func (service *NutritionService) DeleteEntry(entryID string) error {
	return service.store.DeleteEntry(entryID)
}

func (service *NutritionService) LogWater(userID string, date string, amountML int) (models.WaterLog, error) {
	water := models.WaterLog{
		ID:       uuid.NewString(),
		UserID:   userID,
		Date:     date,
		AmountML: amountML,
	}
	if err := service.store.AddWater(&water); err != nil {
		return models.WaterLog{}, fmt.Errorf("log water: %w", err)
	}
	return water, nil
}

// DaySummary reads the day and its totals. A missing day yields empty
// totals without creating a row.
func (service *NutritionService) DaySummary(userID string, date string) (models.NutritionDay, DayTotals, error) {
	day, found, err := service.store.GetDay(userID, date)
	if err != nil {
		return models.NutritionDay{}, DayTotals{}, err
	}
	if !found {
		return models.NutritionDay{UserID: userID, Date: date}, DayTotals{}, nil
	}

	totals := DayTotals{}
	for _, entry := range day.Entries {
		totals.Calories += entry.Calories
		totals.Protein += entry.Protein
		totals.Carbs += entry.Carbs
		totals.Fat += entry.Fat
		totals.WaterML += entry.WaterML
	}

	water, err := service.store.ListWater(userID, date)
	if err != nil {
		return models.NutritionDay{}, DayTotals{}, err
	}
	for _, log := range water {
		totals.WaterML += log.AmountML
	}

	return day, totals, nil
}
