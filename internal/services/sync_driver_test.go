package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mkarpovich/liftlog/internal/models"
	"github.com/stretchr/testify/require"
)

type stubQueue struct {
	entries []models.SyncOperation
	removed []uint
	failed  map[uint]string
}

func newStubQueue(entries ...models.SyncOperation) *stubQueue {
	return &stubQueue{entries: entries, failed: make(map[uint]string)}
}

func (stub *stubQueue) Drain() ([]models.SyncOperation, error) {
	result := make([]models.SyncOperation, len(stub.entries))
	copy(result, stub.entries)
	return result, nil
}

func (stub *stubQueue) Remove(id uint) error {
	stub.removed = append(stub.removed, id)
	return nil
}

func (stub *stubQueue) RecordFailure(id uint, message string) error {
	stub.failed[id] = message
	return nil
}

func (stub *stubQueue) PendingCount() (int64, error) {
	return int64(len(stub.entries)), nil
}

type stubSink struct {
	upserts    []string
	deletes    []string
	failTables map[string]error
}

func (stub *stubSink) Upsert(_ context.Context, table string, _ json.RawMessage) error {
	if err := stub.failTables[table]; err != nil {
		return err
	}
	stub.upserts = append(stub.upserts, table)
	return nil
}

func (stub *stubSink) Delete(_ context.Context, table string, recordID string) error {
	if err := stub.failTables[table]; err != nil {
		return err
	}
	stub.deletes = append(stub.deletes, table+"/"+recordID)
	return nil
}

func TestDrainDeliversAndRemoves(t *testing.T) {
	queue := newStubQueue(
		models.SyncOperation{ID: 1, OpType: models.SyncOpInsert, Table: "workout_sessions", RecordID: "s1", Payload: `{"id":"s1"}`},
		models.SyncOperation{ID: 2, OpType: models.SyncOpUpdate, Table: "set_logs", RecordID: "l1", Payload: `{"id":"l1"}`},
		models.SyncOperation{ID: 3, OpType: models.SyncOpDelete, Table: "workout_templates", RecordID: "t1", Payload: `{"id":"t1"}`},
	)
	sink := &stubSink{}
	driver := NewSyncDriver(queue, sink, quietLogger())

	result := driver.Drain(context.Background())

	require.True(t, result.Success)
	require.Equal(t, 3, result.Synced)
	require.Zero(t, result.Failed)
	require.Equal(t, []string{"workout_sessions", "set_logs"}, sink.upserts)
	require.Equal(t, []string{"workout_templates/t1"}, sink.deletes)
	require.Equal(t, []uint{1, 2, 3}, queue.removed)
}

func TestDrainFailureKeepsEntry(t *testing.T) {
	queue := newStubQueue(
		models.SyncOperation{ID: 7, OpType: models.SyncOpInsert, Table: "workout_sessions", RecordID: "s1", Payload: `{"id":"s1"}`},
	)
	sink := &stubSink{failTables: map[string]error{"workout_sessions": errors.New("remote unavailable")}}
	driver := NewSyncDriver(queue, sink, quietLogger())

	result := driver.Drain(context.Background())

	require.False(t, result.Success)
	require.Zero(t, result.Synced)
	require.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	require.Empty(t, queue.removed, "failed entries are never removed")
	require.Contains(t, queue.failed[7], "remote unavailable")

	// Remote recovers: the retained entry drains cleanly.
	sink.failTables = nil
	result = driver.Drain(context.Background())
	require.True(t, result.Success)
	require.Equal(t, 1, result.Synced)
	require.Equal(t, []uint{7}, queue.removed)
}

func TestDrainUnmappedTableIsHardError(t *testing.T) {
	queue := newStubQueue(
		models.SyncOperation{ID: 4, OpType: models.SyncOpInsert, Table: "user_settings", RecordID: "u1", Payload: `{}`},
	)
	sink := &stubSink{}
	driver := NewSyncDriver(queue, sink, quietLogger())

	result := driver.Drain(context.Background())

	require.False(t, result.Success)
	require.Equal(t, 1, result.Failed)
	require.Contains(t, queue.failed[4], "unmapped sync table")
	require.Empty(t, sink.upserts)
	require.Empty(t, queue.removed)
}

func TestDrainWithoutSinkIsQuietNoop(t *testing.T) {
	queue := newStubQueue(
		models.SyncOperation{ID: 1, OpType: models.SyncOpInsert, Table: "set_logs", RecordID: "l1", Payload: `{}`},
	)
	driver := NewSyncDriver(queue, nil, quietLogger())

	result := driver.Drain(context.Background())

	require.False(t, result.Success)
	require.Zero(t, result.Synced)
	require.Zero(t, result.Failed)
	require.Empty(t, result.Errors)
	require.Empty(t, queue.removed, "nothing is consumed while unconfigured")
}

func TestDrainEmptyQueueSucceeds(t *testing.T) {
	driver := NewSyncDriver(newStubQueue(), &stubSink{}, quietLogger())
	result := driver.Drain(context.Background())
	require.True(t, result.Success)
	require.Zero(t, result.Synced)
}
