//go:build database

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// exerciseStore runs the append-only snapshot store contract against a
// live backend: empty read, two saves, latest-wins load, status and clear.
func exerciseStore(t *testing.T, store contract.SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	_, err := store.LoadLatest(ctx)
	require.ErrorIs(t, err, schema.ErrNoSnapshot)

	first := &schema.Snapshot{
		Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Responses: schema.ResponseSet{
			schema.ResponseKey("leadership", "q1"): schema.ResponseYes,
		},
		SubResponses: schema.SubResponseSet{
			schema.SubResponseKey("planning", "q1", 1): true,
		},
	}
	require.NoError(t, store.Save(ctx, first))

	second := &schema.Snapshot{
		Timestamp: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Responses: schema.ResponseSet{
			schema.ResponseKey("leadership", "q1"): schema.ResponseNo,
			schema.ResponseKey("leadership", "q2"): 3,
		},
		SubResponses: schema.SubResponseSet{},
	}
	require.NoError(t, store.Save(ctx, second))

	got, err := store.LoadLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Timestamp, got.Timestamp)
	assert.Equal(t, second.Responses, got.Responses)

	status, err := store.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.EqualValues(t, 2, status.TotalSnapshots)

	require.NoError(t, store.Clear(ctx))
	status, err = store.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.TotalSnapshots)
}
