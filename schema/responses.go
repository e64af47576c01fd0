package schema

import (
	"fmt"
	"time"
)

// ResponseSet holds direct answers keyed by ResponseKey. XO answers use the
// ResponseYes/ResponseNo sentinels; PJ answers use the 0-4 ordinal. Keys
// that reference no catalog question are tolerated and ignored by scoring.
type ResponseSet map[string]int

// SubResponseSet holds checklist answers keyed by SubResponseKey.
type SubResponseSet map[string]bool

// ResponseKey builds the flattened map key for a question's direct answer.
func ResponseKey(sectionID, questionID string) string {
	return sectionID + "_" + questionID
}

// SubResponseKey builds the flattened map key for one checklist item.
// Indexes are 1-based, matching the persisted snapshot format.
func SubResponseKey(sectionID, questionID string, index int) string {
	return fmt.Sprintf("%s_%s_sub_%d", sectionID, questionID, index)
}

// Clone returns a deep copy of the set. A nil receiver yields an empty set.
func (rs ResponseSet) Clone() ResponseSet {
	out := make(ResponseSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the set. A nil receiver yields an empty set.
func (srs SubResponseSet) Clone() SubResponseSet {
	out := make(SubResponseSet, len(srs))
	for k, v := range srs {
		out[k] = v
	}
	return out
}

// Snapshot is one persisted state of the in-memory response sets. The store
// appends snapshots and reads back the one with the latest timestamp.
type Snapshot struct {
	Timestamp    time.Time      `json:"timestamp"`
	Responses    ResponseSet    `json:"responses"`
	SubResponses SubResponseSet `json:"sub_responses"`
}

// NewSnapshot stamps the given sets with the current time.
func NewSnapshot(responses ResponseSet, subResponses SubResponseSet) *Snapshot {
	return &Snapshot{
		Timestamp:    time.Now().UTC(),
		Responses:    responses,
		SubResponses: subResponses,
	}
}

// StoreStatus describes the snapshot store for diagnostics.
type StoreStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalSnapshots int64     `json:"total_snapshots"`
	OldestSnapshot time.Time `json:"oldest_snapshot,omitzero"`
	LatestSnapshot time.Time `json:"latest_snapshot,omitzero"`
}
