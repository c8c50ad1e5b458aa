// Package api is the host-integration surface of the core: a thin JSON
// API for liveness, sync control, and snapshots of local state. All
// rendering and navigation live in the host application.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/mkarpovich/liftlog/internal/services"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	engine    *services.SessionEngine
	driver    *services.SyncDriver
	nutrition *services.NutritionService
	weight    BodyWeightStore
	log       *logrus.Logger
}

type BodyWeightStore interface {
	Upsert(userID string, date string, weightKg float64, notes string) (models.BodyWeightLog, error)
}

func NewHandler(
	engine *services.SessionEngine,
	driver *services.SyncDriver,
	nutrition *services.NutritionService,
	weight BodyWeightStore,
	log *logrus.Logger,
) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{
		engine:    engine,
		driver:    driver,
		nutrition: nutrition,
		weight:    weight,
		log:       log,
	}
}

func (handler *Handler) Register(app *fiber.App) {
	app.Get("/health", handler.Health)
	app.Get("/api/sync/status", handler.SyncStatus)
	app.Post("/api/sync/run", handler.RunSync)
	app.Get("/api/session/active", handler.ActiveSession)
	app.Get("/api/nutrition/:user/:date", handler.NutritionDay)
	app.Put("/api/weight/:user/:date", handler.UpsertWeight)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// SyncStatus surfaces the pending queue depth so a host can show an
// aggregate "pending sync count" without touching sync internals.
func (handler *Handler) SyncStatus(c *fiber.Ctx) error {
	pending, err := handler.driver.PendingCount()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"pending": pending})
}

func (handler *Handler) RunSync(c *fiber.Ctx) error {
	result := handler.driver.Drain(c.Context())
	return c.JSON(result)
}

func (handler *Handler) ActiveSession(c *fiber.Ctx) error {
	active := handler.engine.Active()
	if active == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active session"})
	}

	return c.JSON(fiber.Map{
		"session_id":       active.SessionID,
		"name":             active.Name,
		"started_at":       active.StartedAt.Format(time.RFC3339),
		"current_exercise": active.CurrentExercise,
		"exercise_count":   len(active.Exercises),
		"elapsed_seconds":  int(handler.engine.Elapsed() / time.Second),
		"rest_remaining":   int(handler.engine.RestRemaining() / time.Second),
		"pr_count":         len(active.PRs),
	})
}

func (handler *Handler) NutritionDay(c *fiber.Ctx) error {
	userID := c.Params("user")
	date := c.Params("date")

	day, totals, err := handler.nutrition.DaySummary(userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"date":    day.Date,
		"entries": day.Entries,
		"totals": fiber.Map{
			"calories": totals.Calories,
			"protein":  totals.Protein,
			"carbs":    totals.Carbs,
			"fat":      totals.Fat,
			"water_ml": totals.WaterML,
		},
		"targets": fiber.Map{
			"calories": day.TargetCalories,
			"protein":  day.TargetProtein,
			"carbs":    day.TargetCarbs,
			"fat":      day.TargetFat,
			"water_ml": day.TargetWaterML,
		},
	})
}

type weightPayload struct {
	WeightKg float64 `json:"weight_kg"`
	Notes    string  `json:"notes"`
}

func (handler *Handler) UpsertWeight(c *fiber.Ctx) error {
	var payload weightPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if payload.WeightKg <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight must be positive"})
	}

	entry, err := handler.weight.Upsert(c.Params("user"), c.Params("date"), payload.WeightKg, payload.Notes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entry)
}
