// ABOUTME: Snapshot domain model is the versioned export of all persisted state
// ABOUTME: Used by the export/import operations for backup and restore

package domain

import "time"

// SnapshotVersion is the only snapshot shape this build understands;
// import rejects anything else.
const SnapshotVersion = 1

// Snapshot is a point-in-time export of items, settings and the ledger
type Snapshot struct {
	// Version tags the snapshot shape
	Version int `json:"version"`

	// ExportedAt is when the snapshot was produced
	ExportedAt time.Time `json:"exported_at"`

	// Items are the tracked items keyed by composite identity
	Items map[string]TrackedItem `json:"items"`

	// Settings is the process-wide configuration at export time
	Settings Settings `json:"settings"`

	// Ledger is the update ledger in recency order, newest first
	Ledger []UpdateEntry `json:"ledger"`
}
