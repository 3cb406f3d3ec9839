// ABOUTME: ExtractedRecord is the normalized result of scraping a detail page
// ABOUTME: Field misses degrade to zero values; only identity is load-bearing

package domain

// UnknownTitle is the sentinel used when no title could be extracted
const UnknownTitle = "Unknown"

// ExtractedRecord is what a site extractor produces from one detail page
// plus its optional companion chapter-list endpoint. Every field except
// the identity pair may legitimately be a zero value after HTML drift.
type ExtractedRecord struct {
	// Site is the identifier of the extractor that produced the record
	Site string `json:"site"`

	// Slug is the item identifier parsed from the source URL path;
	// empty when the URL did not match, callers must guard
	Slug string `json:"slug"`

	// Title is the extracted series title, UnknownTitle when absent
	Title string `json:"title"`

	// Thumbnail is the extracted cover image URL
	Thumbnail string `json:"thumbnail"`

	// LatestChapter is the label of the newest chapter found
	LatestChapter string `json:"latest_chapter"`

	// LatestChapterNum is the number parsed from the chapter label or
	// link; 0 when no digits were found
	LatestChapterNum float64 `json:"latest_chapter_num"`

	// LatestChapterURL is the absolute link to the newest chapter
	LatestChapterURL string `json:"latest_chapter_url"`

	// LastUpdatedLabel is the site-supplied free-text update hint
	LastUpdatedLabel string `json:"last_updated_label"`
}

// ID returns the composite identity of the record, empty when the slug
// could not be parsed.
func (r *ExtractedRecord) ID() string {
	if r.Slug == "" {
		return ""
	}
	return ItemID(r.Site, r.Slug)
}
