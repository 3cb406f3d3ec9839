// ABOUTME: Response DTOs for the update ledger and the badge
// ABOUTME: Ledger entries are returned in recency order, newest first

package responses

import "time"

// UpdateEntryResponse represents one detected update in API responses
type UpdateEntryResponse struct {
	ItemID     string    `json:"item_id" doc:"Identity of the tracked item"`
	Title      string    `json:"title" doc:"Item title at detection time"`
	Thumbnail  string    `json:"thumbnail,omitempty" doc:"Cover URL at detection time"`
	URL        string    `json:"url" doc:"Detail page URL at detection time"`
	OldChapter string    `json:"old_chapter,omitempty" doc:"Chapter label before the update"`
	NewChapter string    `json:"new_chapter" doc:"Chapter label that triggered the update"`
	DetectedAt time.Time `json:"detected_at" doc:"When the update was detected"`
	Read       bool      `json:"read" doc:"Whether the user has seen the update"`
}

// ListLedgerResponse represents the update ledger
type ListLedgerResponse struct {
	Entries []UpdateEntryResponse `json:"entries" doc:"Update entries, newest first"`
	Total   int                   `json:"total" doc:"Number of ledger entries"`
}

// BadgeResponse carries the unread-count badge state
type BadgeResponse struct {
	Unread int `json:"unread" doc:"Number of items with unseen updates"`
}
