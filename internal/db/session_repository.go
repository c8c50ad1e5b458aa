package db

import (
	"errors"
	"time"

	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("workout session not found")

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.WorkoutSession) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("SetLogs").Create(session).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "workout_sessions", session.ID, session)
	})
}

func (repo *SessionRepository) FindByID(sessionID string) (models.WorkoutSession, error) {
	var session models.WorkoutSession
	if err := repo.database.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkoutSession{}, ErrSessionNotFound
		}
		return models.WorkoutSession{}, err
	}
	return session, nil
}

// UpdateSnapshot rewrites the frozen template snapshot. Used by quick
// workouts when an exercise is appended mid-session.
func (repo *SessionRepository) UpdateSnapshot(sessionID string, snapshot models.TemplateSnapshot) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var session models.WorkoutSession
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		session.TemplateSnapshot = snapshot
		if err := tx.Omit("SetLogs").Save(&session).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpUpdate, "workout_sessions", session.ID, session)
	})
}

// Complete marks the session finished with its final duration, rating
// and notes.
func (repo *SessionRepository) Complete(sessionID string, completedAt time.Time, durationSeconds int, rating *int, notes string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var session models.WorkoutSession
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		session.CompletedAt = &completedAt
		session.DurationSeconds = durationSeconds
		session.Rating = rating
		if notes != "" {
			session.Notes = notes
		}
		if err := tx.Omit("SetLogs").Save(&session).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpUpdate, "workout_sessions", session.ID, session)
	})
}

// ListForUser returns session history newest first, including
// incomplete sessions left behind by interrupted workouts.
func (repo *SessionRepository) ListForUser(userID string, limit int) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	query := repo.database.Where("user_id = ?", userID).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *SessionRepository) Delete(sessionID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		sets := make([]models.SetLog, 0)
		if err := tx.Where("workout_session_id = ?", sessionID).Find(&sets).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.WorkoutSession{}, "id = ?", sessionID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSessionNotFound
		}

		for _, set := range sets {
			if err := appendSyncOperation(tx, models.SyncOpDelete, "set_logs", set.ID, map[string]string{"id": set.ID}); err != nil {
				return err
			}
		}
		return appendSyncOperation(tx, models.SyncOpDelete, "workout_sessions", sessionID, map[string]string{"id": sessionID})
	})
}
