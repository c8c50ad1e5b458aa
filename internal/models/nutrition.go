package models

import "time"

const (
	TargetMethodManual  = "manual"
	TargetMethodDerived = "derived"
)

// NutritionTargets carries the daily calorie/macro/water goals plus the
// inputs they were derived from when CalculationMethod is "derived".
type NutritionTargets struct {
	Calories          int     `json:"calories"`
	Protein           int     `json:"protein"`
	Carbs             int     `json:"carbs"`
	Fat               int     `json:"fat"`
	WaterML           int     `json:"water_ml"`
	CalculationMethod string  `json:"calculation_method"`
	BodyWeightKg      float64 `json:"body_weight_kg,omitempty"`
	ActivityLevel     string  `json:"activity_level,omitempty"`
	Goal              string  `json:"goal,omitempty"`
}

// NutritionDay is unique per (user_id, date); Date is a local calendar
// day formatted as 2006-01-02.
type NutritionDay struct {
	ID                string `gorm:"primaryKey"`
	UserID            string `gorm:"not null;uniqueIndex:uidx_nutrition_user_date"`
	Date              string `gorm:"not null;uniqueIndex:uidx_nutrition_user_date"`
	TargetCalories    int
	TargetProtein     int
	TargetCarbs       int
	TargetFat         int
	TargetWaterML     int
	CalculationMethod string           `gorm:"not null;default:manual"`
	Entries           []NutritionEntry `gorm:"foreignKey:NutritionDayID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (NutritionDay) TableName() string {
	return "nutrition_days"
}

type NutritionEntry struct {
	ID             string `gorm:"primaryKey"`
	NutritionDayID string `gorm:"not null;index"`
	Label          string `gorm:"not null"`
	Calories       int    `gorm:"not null;default:0"`
	Protein        int    `gorm:"not null;default:0"`
	Carbs          int    `gorm:"not null;default:0"`
	Fat            int    `gorm:"not null;default:0"`
	WaterML        int    `gorm:"not null;default:0"`
	OrderIndex     int    `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (NutritionEntry) TableName() string {
	return "nutrition_entries"
}

type WaterLog struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index"`
	Date      string `gorm:"not null;index"`
	AmountML  int    `gorm:"not null"`
	CreatedAt time.Time
}

func (WaterLog) TableName() string {
	return "water_logs"
}

type MealTemplate struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Calories  int    `gorm:"not null;default:0"`
	Protein   int    `gorm:"not null;default:0"`
	Carbs     int    `gorm:"not null;default:0"`
	Fat       int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MealTemplate) TableName() string {
	return "meal_templates"
}
