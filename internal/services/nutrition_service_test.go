package services

import (
	"testing"

	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/stretchr/testify/require"
)

type stubNutritionStore struct {
	days    map[string]models.NutritionDay
	water   map[string][]models.WaterLog
	entries []models.NutritionEntry
}

func newStubNutritionStore() *stubNutritionStore {
	return &stubNutritionStore{
		days:  make(map[string]models.NutritionDay),
		water: make(map[string][]models.WaterLog),
	}
}

func dayKey(userID, date string) string { return userID + "|" + date }

func (stub *stubNutritionStore) GetOrCreateDay(userID string, date string, targets models.NutritionTargets) (models.NutritionDay, error) {
	key := dayKey(userID, date)
	if day, ok := stub.days[key]; ok {
		return day, nil
	}
	day := models.NutritionDay{
		ID:                "day-" + date,
		UserID:            userID,
		Date:              date,
		TargetCalories:    targets.Calories,
		TargetProtein:     targets.Protein,
		CalculationMethod: targets.CalculationMethod,
	}
	stub.days[key] = day
	return day, nil
}

func (stub *stubNutritionStore) GetDay(userID string, date string) (models.NutritionDay, bool, error) {
	day, ok := stub.days[dayKey(userID, date)]
	return day, ok, nil
}

func (stub *stubNutritionStore) CreateEntry(entry *models.NutritionEntry) error {
	stub.entries = append(stub.entries, *entry)
	for key, day := range stub.days {
		if day.ID == entry.NutritionDayID {
			day.Entries = append(day.Entries, *entry)
			stub.days[key] = day
		}
	}
	return nil
}

func (stub *stubNutritionStore) UpdateEntry(*models.NutritionEntry) error { return nil }
func (stub *stubNutritionStore) DeleteEntry(string) error                 { return nil }

func (stub *stubNutritionStore) AddWater(water *models.WaterLog) error {
	key := dayKey(water.UserID, water.Date)
	stub.water[key] = append(stub.water[key], *water)
	return nil
}

func (stub *stubNutritionStore) ListWater(userID string, date string) ([]models.WaterLog, error) {
	return stub.water[dayKey(userID, date)], nil
}

type stubTargetsReader struct {
	values map[string]string
}

func (stub *stubTargetsReader) Get(_ string, key string) (string, bool, error) {
	value, ok := stub.values[key]
	return value, ok, nil
}

func TestGetOrCreateDayUsesStoredTargets(t *testing.T) {
	store := newStubNutritionStore()
	settings := &stubTargetsReader{values: map[string]string{
		models.SettingNutritionTargets: `{"calories":2600,"protein":180,"calculation_method":"derived"}`,
	}}
	service := NewNutritionService(store, settings)

	day, err := service.GetOrCreateDay("user-1", "2026-03-10")
	require.NoError(t, err)
	require.Equal(t, 2600, day.TargetCalories)
	require.Equal(t, 180, day.TargetProtein)
	require.Equal(t, models.TargetMethodDerived, day.CalculationMethod)
}

func TestGetOrCreateDayFallsBackToManualTargets(t *testing.T) {
	store := newStubNutritionStore()
	service := NewNutritionService(store, &stubTargetsReader{values: map[string]string{}})

	day, err := service.GetOrCreateDay("user-1", "2026-03-10")
	require.NoError(t, err)
	require.Zero(t, day.TargetCalories)
	require.Equal(t, models.TargetMethodManual, day.CalculationMethod)
}

func TestDaySummaryAggregatesEntriesAndWater(t *testing.T) {
	store := newStubNutritionStore()
	service := NewNutritionService(store, &stubTargetsReader{values: map[string]string{}})

	_, err := service.AddEntry("user-1", "2026-03-10", models.NutritionEntry{Label: "Breakfast", Calories: 520, Protein: 35, Carbs: 60, Fat: 14, WaterML: 250})
	require.NoError(t, err)
	_, err = service.AddEntry("user-1", "2026-03-10", models.NutritionEntry{Label: "Lunch", Calories: 700, Protein: 45, Carbs: 80, Fat: 20})
	require.NoError(t, err)
	_, err = service.LogWater("user-1", "2026-03-10", 500)
	require.NoError(t, err)

	_, totals, err := service.DaySummary("user-1", "2026-03-10")
	require.NoError(t, err)
	require.Equal(t, 1220, totals.Calories)
	require.Equal(t, 80, totals.Protein)
	require.Equal(t, 140, totals.Carbs)
	require.Equal(t, 34, totals.Fat)
	require.Equal(t, 750, totals.WaterML)
}

func TestDaySummaryMissingDayIsEmpty(t *testing.T) {
	service := NewNutritionService(newStubNutritionStore(), &stubTargetsReader{values: map[string]string{}})

	day, totals, err := service.DaySummary("user-1", "2026-01-01")
	require.NoError(t, err)
	require.Empty(t, day.ID, "a read must not create the day row")
	require.Zero(t, totals.Calories)
}
