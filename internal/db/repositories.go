package db

import "gorm.io/gorm"

type Repositories struct {
	Exercises  *ExerciseRepository
	Programs   *ProgramRepository
	Templates  *TemplateRepository
	Sessions   *SessionRepository
	SetLogs    *SetLogRepository
	Nutrition  *NutritionRepository
	BodyWeight *BodyWeightRepository
	Settings   *SettingsRepository
	Outbox     *OutboxRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Exercises:  NewExerciseRepository(database),
		Programs:   NewProgramRepository(database),
		Templates:  NewTemplateRepository(database),
		Sessions:   NewSessionRepository(database),
		SetLogs:    NewSetLogRepository(database),
		Nutrition:  NewNutritionRepository(database),
		BodyWeight: NewBodyWeightRepository(database),
		Settings:   NewSettingsRepository(database),
		Outbox:     NewOutboxRepository(database),
	}
}
