// Package snapstore persists response snapshots.
//
// All backends share the same append-only contract: Save inserts a new
// snapshot row and never rewrites history, LoadLatest returns the most
// recently saved snapshot, and an empty store reports
// schema.ErrNoSnapshot. Relational backends (SQLite, MySQL, PostgreSQL)
// go through database/sql; Mongo and the in-memory store have their own
// implementations.
package snapstore

import (
	"fmt"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// SnapshotsTable is the relational table holding snapshots.
const SnapshotsTable = "assessment_snapshots"

// New creates a snapshot store for the configured backend. The connection
// string format is backend-specific and validated by the config layer.
func New(backend schema.StoreBackend, connStr string) (contract.SnapshotStore, error) {
	switch backend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		return newSQLStore(backend, connStr)
	case schema.MongoBackend:
		return newMongoStore(connStr)
	case schema.MemoryBackend:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", backend)
	}
}
