package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/mkarpovich/liftlog/internal/remote"
	"github.com/sirupsen/logrus"
)

// remoteTableNames whitelists the local tables that map to a remote
// table. Anything else arriving in the queue is a hard error recorded
// on the entry.
var remoteTableNames = map[string]string{
	"exercises":                  "exercises",
	"programs":                   "programs",
	"workout_templates":          "workout_templates",
	"workout_template_exercises": "workout_template_exercises",
	"workout_sessions":           "workout_sessions",
	"set_logs":                   "set_logs",
	"nutrition_days":             "nutrition_days",
	"nutrition_entries":          "nutrition_entries",
	"water_logs":                 "water_logs",
	"meal_templates":             "meal_templates",
}

type OutboxQueue interface {
	Drain() ([]models.SyncOperation, error)
	Remove(id uint) error
	RecordFailure(id uint, message string) error
	PendingCount() (int64, error)
}

type SyncResult struct {
	Success bool     `json:"success"`
	Synced  int      `json:"synced"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// SyncDriver walks the outbox against the remote sink. It holds no
// lock against the store: entries created mid-drain are picked up on
// the next pass. An absent sink makes Drain a clean no-op failure so
// connectivity never blocks local use.
type SyncDriver struct {
	queue OutboxQueue
	sink  remote.Sink
	log   *logrus.Logger
}

func NewSyncDriver(queue OutboxQueue, sink remote.Sink, log *logrus.Logger) *SyncDriver {
	if log == nil {
		log = logrus.New()
	}
	return &SyncDriver{queue: queue, sink: sink, log: log}
}

func (driver *SyncDriver) PendingCount() (int64, error) {
	return driver.queue.PendingCount()
}

// Drain delivers pending operations oldest first. Per-entry failures
// bump the attempt counter and retain the error; the entry stays queued
// for the next cycle. Success removes the entry.
func (driver *SyncDriver) Drain(ctx context.Context) SyncResult {
	if driver.sink == nil {
		driver.log.Debug("remote sink not configured, skipping sync")
		return SyncResult{Success: false}
	}

	operations, err := driver.queue.Drain()
	if err != nil {
		driver.log.WithError(err).Error("read sync queue failed")
		return SyncResult{Success: false, Errors: []string{err.Error()}}
	}
	if len(operations) == 0 {
		return SyncResult{Success: true}
	}

	result := SyncResult{}
	for _, operation := range operations {
		if err := driver.deliver(ctx, operation); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("op %d (%s %s/%s): %v", operation.ID, operation.OpType, operation.Table, operation.RecordID, err))
			if recordErr := driver.queue.RecordFailure(operation.ID, err.Error()); recordErr != nil {
				driver.log.WithError(recordErr).WithField("op_id", operation.ID).Error("record sync failure failed")
			}
			continue
		}

		if err := driver.queue.Remove(operation.ID); err != nil {
			// The remote accepted the operation; leaving the entry means a
			// redundant but idempotent redelivery next cycle.
			driver.log.WithError(err).WithField("op_id", operation.ID).Error("remove confirmed sync entry failed")
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("op %d: remove after delivery: %v", operation.ID, err))
			continue
		}
		result.Synced++
	}

	result.Success = result.Failed == 0
	driver.log.WithFields(logrus.Fields{
		"synced": result.Synced,
		"failed": result.Failed,
	}).Info("sync drain finished")
	return result
}

func (driver *SyncDriver) deliver(ctx context.Context, operation models.SyncOperation) error {
	table, mapped := remoteTableNames[operation.Table]
	if !mapped {
		return fmt.Errorf("unmapped sync table %q", operation.Table)
	}

	switch operation.OpType {
	case models.SyncOpInsert, models.SyncOpUpdate:
		return driver.sink.Upsert(ctx, table, json.RawMessage(operation.Payload))
	case models.SyncOpDelete:
		return driver.sink.Delete(ctx, table, operation.RecordID)
	default:
		return fmt.Errorf("unknown sync operation type %q", operation.OpType)
	}
}
