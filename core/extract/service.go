// ABOUTME: Extraction service fetches a detail page and dispatches to a site extractor
// ABOUTME: Only a failed primary fetch is an error; field misses degrade silently

package extract

import (
	"context"
	"io"

	"mangawatch/core/domain"
	coreerrors "mangawatch/core/errors"
	"mangawatch/core/interfaces"
)

// Service wires the HTTP client to the extractor registry. The check
// cycle uses it to re-extract each tracked item from its stored URL.
type Service struct {
	deps     interfaces.Dependencies
	registry *Registry
}

// NewService creates an extraction service over the given registry
func NewService(deps interfaces.Dependencies, registry *Registry) *Service {
	return &Service{
		deps:     deps,
		registry: registry,
	}
}

// Registry exposes the strategy table, mainly for wiring and tests
func (s *Service) Registry() *Registry {
	return s.registry
}

// ExtractFromURL fetches the primary document at pageURL and runs the
// matching site extractor over it. A non-success status or transport
// failure on this fetch is the only error path; secondary fetches inside
// extractors degrade to the fallback tier on their own.
func (s *Service) ExtractFromURL(ctx context.Context, pageURL string) (*domain.ExtractedRecord, error) {
	extractor, ok := s.registry.ForURL(pageURL)
	if !ok {
		return nil, &coreerrors.ValidationError{
			Field:   "url",
			Message: "no registered site matches URL",
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.FetchError{URL: pageURL}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: pageURL}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.FetchError{URL: pageURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.FetchError{URL: pageURL}
	}

	return extractor.Extract(ctx, body, pageURL)
}
