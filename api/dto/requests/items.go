// ABOUTME: Request DTOs for tracked-item API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// RegisterItemRequest carries an already-extracted record from a page the
// user is viewing. The record is trusted as-is and never re-fetched.
type RegisterItemRequest struct {
	// ID is the composite "site:slug" identity of the item
	ID string `json:"id" required:"true" doc:"Composite site:slug identity"`

	// Title is the display title of the series
	Title string `json:"title,omitempty" doc:"Series title"`

	// Thumbnail is the cover image URL
	Thumbnail string `json:"thumbnail,omitempty" doc:"Cover image URL"`

	// URL is the canonical detail-page URL
	URL string `json:"url" required:"true" format:"uri" doc:"Detail page URL"`

	// LatestChapter is the label of the newest known chapter
	LatestChapter string `json:"latest_chapter,omitempty" doc:"Latest chapter label"`

	// LatestChapterNum is the number parsed from the label
	LatestChapterNum float64 `json:"latest_chapter_num,omitempty" minimum:"0" doc:"Latest chapter number"`

	// LatestChapterURL links to the newest known chapter
	LatestChapterURL string `json:"latest_chapter_url,omitempty" doc:"Latest chapter URL"`

	// LastUpdatedLabel is the site-supplied free-text update hint
	LastUpdatedLabel string `json:"last_updated_label,omitempty" doc:"Site-supplied last-updated text"`

	// NotifyEnabled is the per-item notification toggle
	NotifyEnabled *bool `json:"notify_enabled,omitempty" doc:"Per-item notification toggle"`
}

// ApplyDefaults sets default values for optional fields
func (r *RegisterItemRequest) ApplyDefaults() {
	if r.NotifyEnabled == nil {
		enabled := true
		r.NotifyEnabled = &enabled
	}
}

// ToggleNotifyRequest flips the per-item notification toggle
type ToggleNotifyRequest struct {
	// Enabled is the new value of the toggle
	Enabled bool `json:"enabled" doc:"Whether notifications are enabled for this item"`
}
