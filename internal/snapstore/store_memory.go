package snapstore

import (
	"context"
	"sync"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// MemoryStore is an in-process SnapshotStore. It backs tests and the MCP
// server's ephemeral sessions; nothing survives the process.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps []schema.Snapshot
}

var _ contract.SnapshotStore = &MemoryStore{} // Compile-time check

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends a deep copy so later mutation of the caller's sets cannot
// change stored history.
func (m *MemoryStore) Save(_ context.Context, snap *schema.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, schema.Snapshot{
		Timestamp:    snap.Timestamp,
		Responses:    snap.Responses.Clone(),
		SubResponses: snap.SubResponses.Clone(),
	})
	return nil
}

// LoadLatest returns a copy of the snapshot with the latest timestamp,
// preferring the most recently appended on ties.
func (m *MemoryStore) LoadLatest(_ context.Context) (*schema.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.snaps) == 0 {
		return nil, schema.ErrNoSnapshot
	}

	latest := &m.snaps[0]
	for i := 1; i < len(m.snaps); i++ {
		if !m.snaps[i].Timestamp.Before(latest.Timestamp) {
			latest = &m.snaps[i]
		}
	}
	return &schema.Snapshot{
		Timestamp:    latest.Timestamp,
		Responses:    latest.Responses.Clone(),
		SubResponses: latest.SubResponses.Clone(),
	}, nil
}

// Status returns diagnostics about the store.
func (m *MemoryStore) Status(_ context.Context) (schema.StoreStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := schema.StoreStatus{
		Backend:        string(schema.MemoryBackend),
		Connected:      true,
		TotalSnapshots: int64(len(m.snaps)),
	}
	for _, snap := range m.snaps {
		if status.OldestSnapshot.IsZero() || snap.Timestamp.Before(status.OldestSnapshot) {
			status.OldestSnapshot = snap.Timestamp
		}
		if snap.Timestamp.After(status.LatestSnapshot) {
			status.LatestSnapshot = snap.Timestamp
		}
	}
	return status, nil
}

// Clear removes all stored snapshots.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = nil
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
