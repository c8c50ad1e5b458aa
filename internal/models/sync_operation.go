package models

import "time"

const (
	SyncOpInsert = "insert"
	SyncOpUpdate = "update"
	SyncOpDelete = "delete"
)

// SyncOperation is one pending outbox entry. The payload must be able
// to reconstruct the remote row without re-reading local state, so the
// queue survives a process restart before being drained. Entries are
// removed only after confirmed remote application.
type SyncOperation struct {
	ID        uint   `gorm:"primaryKey"`
	OpType    string `gorm:"not null"`
	Table     string `gorm:"column:table_name;not null"`
	RecordID  string `gorm:"not null"`
	Payload   string `gorm:"not null"`
	CreatedAt time.Time
	Attempts  int    `gorm:"not null;default:0"`
	LastError string `gorm:"not null;default:''"`
}

func (SyncOperation) TableName() string {
	return "sync_queue"
}
