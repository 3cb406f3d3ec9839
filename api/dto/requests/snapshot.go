// ABOUTME: Request DTOs for snapshot import
// ABOUTME: Wraps the snapshot payload with the merge flag

package requests

import "mangawatch/core/domain"

// ImportSnapshotRequest restores a previously exported snapshot
type ImportSnapshotRequest struct {
	// Merge unions the snapshot into the current state instead of
	// replacing it
	Merge bool `json:"merge,omitempty" doc:"Merge instead of replace"`

	// Snapshot is the payload produced by a prior export
	Snapshot domain.Snapshot `json:"snapshot" required:"true" doc:"Snapshot payload"`
}
