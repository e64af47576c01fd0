// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"io"

	"github.com/auditgauge/auditgauge/schema"
)

// SnapshotStore defines the persistence collaborator for response
// snapshots. Semantics are append-only with latest-wins reads: Save never
// rewrites history, LoadLatest returns the most recent snapshot, and a
// failed call leaves both the store and the caller's in-memory sets
// untouched. Implementations report schema.ErrNoSnapshot from LoadLatest
// when the store is empty.
type SnapshotStore interface {
	// Save appends a full snapshot of the response sets.
	Save(ctx context.Context, snap *schema.Snapshot) error

	// LoadLatest returns the snapshot with the most recent timestamp.
	LoadLatest(ctx context.Context) (*schema.Snapshot, error)

	// Status returns diagnostics about the store.
	Status(ctx context.Context) (schema.StoreStatus, error)

	// Clear removes all stored snapshots.
	Clear(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}

// Renderer turns a finalized ReportModel into a byte stream. Renderers are
// pure consumers: two identical models must produce identical output.
type Renderer interface {
	Render(model *schema.ReportModel, w io.Writer) error
}
