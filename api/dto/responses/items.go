// ABOUTME: Response DTOs for tracked-item API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// ItemResponse represents a tracked item in API responses
type ItemResponse struct {
	ID               string    `json:"id" doc:"Composite site:slug identity"`
	Title            string    `json:"title" doc:"Series title"`
	Thumbnail        string    `json:"thumbnail,omitempty" doc:"Cover image URL"`
	URL              string    `json:"url" doc:"Detail page URL"`
	LatestChapter    string    `json:"latest_chapter,omitempty" doc:"Latest chapter label"`
	LatestChapterNum float64   `json:"latest_chapter_num" doc:"Latest chapter number"`
	LatestChapterURL string    `json:"latest_chapter_url,omitempty" doc:"Latest chapter URL"`
	LastUpdatedLabel string    `json:"last_updated_label,omitempty" doc:"Site-supplied last-updated text"`
	LastChecked      time.Time `json:"last_checked" doc:"When the item was last re-checked"`
	Unread           bool      `json:"unread" doc:"Whether the latest update is unseen"`
	NotifyEnabled    bool      `json:"notify_enabled" doc:"Per-item notification toggle"`
	CreatedAt        time.Time `json:"created_at" doc:"When the item was registered"`
}

// ListItemsResponse represents the tracked-item collection
type ListItemsResponse struct {
	Items []ItemResponse `json:"items" doc:"Tracked items, newest registration first"`
	Total int            `json:"total" doc:"Number of tracked items"`
}

// ExistsResponse reports whether an item is tracked
type ExistsResponse struct {
	Exists bool `json:"exists" doc:"Whether the item is currently tracked"`
}
