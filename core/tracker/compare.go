// ABOUTME: Comparator decides whether a fresh extraction is forward progress
// ABOUTME: Only a strictly greater chapter number counts as an update

package tracker

import "mangawatch/core/domain"

// Comparison is the outcome of weighing a fresh extraction against the
// stored item state
type Comparison struct {
	// HasUpdate is true only when the fresh chapter number strictly
	// exceeds the stored one
	HasUpdate bool

	// PrevLabel is the stored chapter label before the comparison
	PrevLabel string

	// NewLabel is the freshly extracted chapter label
	NewLabel string

	// NewNumber is the freshly extracted chapter number
	NewNumber float64

	// LastUpdatedLabel is the freshly extracted site-supplied update hint
	LastUpdatedLabel string

	// Err carries an extraction failure; when set, HasUpdate is false
	// and the other fields are zero
	Err error
}

// Compare evaluates fresh against stored. A parse miss (fresh number 0)
// can never beat a known chapter, so items never appear to regress; an
// extraction error short-circuits to no-update with the error attached
// for the orchestrator to log.
func Compare(stored domain.TrackedItem, fresh *domain.ExtractedRecord, extractErr error) Comparison {
	if extractErr != nil || fresh == nil {
		return Comparison{Err: extractErr}
	}

	return Comparison{
		HasUpdate:        fresh.LatestChapterNum > stored.LatestChapterNum,
		PrevLabel:        stored.LatestChapter,
		NewLabel:         fresh.LatestChapter,
		NewNumber:        fresh.LatestChapterNum,
		LastUpdatedLabel: fresh.LastUpdatedLabel,
	}
}
