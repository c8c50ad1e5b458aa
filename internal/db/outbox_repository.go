package db

import (
	"encoding/json"
	"fmt"

	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

// appendSyncOperation records a pending mutation for the remote sink.
// It must be called on the same transaction handle as the primary
// write, so a persisted mutation can never exist without its queue
// entry.
func appendSyncOperation(tx *gorm.DB, opType string, table string, recordID string, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode sync payload for %s/%s: %w", table, recordID, err)
	}

	operation := models.SyncOperation{
		OpType:   opType,
		Table:    table,
		RecordID: recordID,
		Payload:  string(encoded),
	}
	if err := tx.Create(&operation).Error; err != nil {
		return fmt.Errorf("append sync operation for %s/%s: %w", table, recordID, err)
	}
	return nil
}

type OutboxRepository struct {
	database *gorm.DB
}

func NewOutboxRepository(database *gorm.DB) *OutboxRepository {
	return &OutboxRepository{database: database}
}

// Enqueue appends an operation outside any caller transaction. Store
// writes should prefer appendSyncOperation inside their own
// transaction; this path exists for callers that already hold a fully
// committed record.
func (repo *OutboxRepository) Enqueue(opType string, table string, recordID string, payload any) error {
	return appendSyncOperation(repo.database, opType, table, recordID, payload)
}

// Drain returns all pending operations oldest first, so remote
// application order matches local mutation order.
func (repo *OutboxRepository) Drain() ([]models.SyncOperation, error) {
	operations := make([]models.SyncOperation, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&operations).Error; err != nil {
		return nil, err
	}
	return operations, nil
}

// Remove deletes a confirmed entry. Called only after the remote sink
// accepted the operation.
func (repo *OutboxRepository) Remove(id uint) error {
	return repo.database.Delete(&models.SyncOperation{}, id).Error
}

// RecordFailure keeps the entry in place for the next drain cycle,
// bumping its attempt count and retaining the error text.
func (repo *OutboxRepository) RecordFailure(id uint, message string) error {
	return repo.database.Model(&models.SyncOperation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": message,
		}).Error
}

func (repo *OutboxRepository) PendingCount() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SyncOperation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
