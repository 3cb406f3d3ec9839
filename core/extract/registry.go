// ABOUTME: SiteExtractor strategy interface and the site registry
// ABOUTME: Dispatches extraction to the implementation matching a page URL

package extract

import (
	"context"

	"mangawatch/core/domain"
)

// SiteExtractor is implemented once per supported site. Implementations
// turn a fetched detail page into a normalized record; field misses
// degrade to zero values instead of failing.
type SiteExtractor interface {
	// Site returns the site identifier used in composite item IDs
	Site() string

	// Match reports whether this extractor handles the given page URL
	Match(pageURL string) bool

	// Extract produces a record from the raw HTML of a detail page.
	// Implementations may issue secondary requests of their own; failures
	// of those are swallowed and logged, never returned.
	Extract(ctx context.Context, html []byte, sourceURL string) (*domain.ExtractedRecord, error)
}

// Registry is the strategy table mapping site identifiers to extractors.
// It currently holds a single entry but dispatch is already URL-driven.
type Registry struct {
	order  []string
	bySite map[string]SiteExtractor
}

// NewRegistry creates an empty extractor registry
func NewRegistry() *Registry {
	return &Registry{
		bySite: make(map[string]SiteExtractor),
	}
}

// Register adds an extractor to the table. Registering the same site
// twice replaces the earlier entry.
func (r *Registry) Register(e SiteExtractor) {
	if _, ok := r.bySite[e.Site()]; !ok {
		r.order = append(r.order, e.Site())
	}
	r.bySite[e.Site()] = e
}

// ForURL returns the first registered extractor whose Match accepts the
// URL, in registration order.
func (r *Registry) ForURL(pageURL string) (SiteExtractor, bool) {
	for _, site := range r.order {
		if e := r.bySite[site]; e.Match(pageURL) {
			return e, true
		}
	}
	return nil, false
}

// BySite returns the extractor registered for a site identifier
func (r *Registry) BySite(site string) (SiteExtractor, bool) {
	e, ok := r.bySite[site]
	return e, ok
}
