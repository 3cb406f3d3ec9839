// ABOUTME: UpdateEntry domain model represents one detected chapter update
// ABOUTME: Defines the bounded, per-item-deduplicated update ledger semantics

package domain

import "time"

// MaxLedgerEntries caps the update ledger; the oldest entries beyond the
// cap are discarded after each insert.
const MaxLedgerEntries = 100

// UpdateEntry is one detected chapter update in the ledger.
// Display fields are denormalized copies taken at detection time so the
// ledger stays renderable after the item changes again.
type UpdateEntry struct {
	// ItemID is the identity of the tracked item this update belongs to.
	// The ledger holds at most one entry per ItemID.
	ItemID string `json:"item_id"`

	// Title is the item title at detection time
	Title string `json:"title"`

	// Thumbnail is the item cover URL at detection time
	Thumbnail string `json:"thumbnail"`

	// URL is the item detail-page URL at detection time
	URL string `json:"url"`

	// OldChapter is the chapter label the item had before the update
	OldChapter string `json:"old_chapter"`

	// NewChapter is the chapter label that triggered the update
	NewChapter string `json:"new_chapter"`

	// DetectedAt is when the check cycle detected the update
	DetectedAt time.Time `json:"detected_at"`

	// Read is set once the user has seen the update
	Read bool `json:"read"`
}
