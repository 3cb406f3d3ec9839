// ABOUTME: TrackedItem domain model represents a series watched for new chapters
// ABOUTME: Provides composite identity helpers and validation for item state

package domain

import (
	"errors"
	"strings"
	"time"
)

// TrackedItem represents a series the user is watching for chapter updates
type TrackedItem struct {
	// ID is the composite "site:slug" identity of the item
	ID string `json:"id"`

	// Title is the display title of the series
	Title string `json:"title"`

	// Thumbnail is the cover image URL
	Thumbnail string `json:"thumbnail"`

	// URL is the canonical detail-page URL of the series
	URL string `json:"url"`

	// LatestChapter is the human-readable label of the newest known chapter
	// (e.g. "Chapter 42")
	LatestChapter string `json:"latest_chapter"`

	// LatestChapterNum is the numeric progress marker parsed from the label.
	// It only ever moves forward across check cycles; 0 means unknown.
	LatestChapterNum float64 `json:"latest_chapter_num"`

	// LatestChapterURL links to the newest known chapter
	LatestChapterURL string `json:"latest_chapter_url"`

	// LastUpdatedLabel is the site-supplied free-text update hint
	// (e.g. "2 hours ago"), not a parsed timestamp
	LastUpdatedLabel string `json:"last_updated_label"`

	// LastChecked is when the item was last re-checked, successfully or not
	LastChecked time.Time `json:"last_checked"`

	// Unread is set when a chapter update was detected and not yet seen
	Unread bool `json:"unread"`

	// NotifyEnabled is the per-item notification toggle
	NotifyEnabled bool `json:"notify_enabled"`

	// CreatedAt is when the item was registered
	CreatedAt time.Time `json:"created_at"`
}

// ItemID builds the composite storage key for a (site, slug) pair
func ItemID(site, slug string) string {
	return site + ":" + slug
}

// SplitItemID splits a composite key back into its (site, slug) pair.
// The slug may itself contain colons; only the first one separates.
func SplitItemID(id string) (site, slug string) {
	site, slug, _ = strings.Cut(id, ":")
	return site, slug
}

// Validate checks that the item carries the fields required for tracking
func (t *TrackedItem) Validate() error {
	if t.ID == "" {
		return errors.New("item ID cannot be empty")
	}

	if t.URL == "" {
		return errors.New("item URL cannot be empty")
	}

	return nil
}
