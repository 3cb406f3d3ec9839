package extract

import (
	"context"
	"errors"
	"io"
	"testing"

	coreerrors "mangawatch/core/errors"
	"mangawatch/core/interfaces"
)

func newTestService(t *testing.T, client interfaces.HTTPClient) *Service {
	t.Helper()

	deps := interfaces.Dependencies{HTTPClient: client}
	registry := NewRegistry()
	registry.Register(newTestExtractor(t, client))
	return NewService(deps, registry)
}

func TestExtractFromURL_NoMatchingSite(t *testing.T) {
	svc := newTestService(t, &mockHTTPClient{})

	_, err := svc.ExtractFromURL(context.Background(), "https://unrelated.example.com/page")
	if !coreerrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestExtractFromURL_FetchFailureStatus(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404, body: "not here"}, nil
		},
	}
	svc := newTestService(t, client)

	_, err := svc.ExtractFromURL(context.Background(), "https://manhuaus.com/manga/gone/")
	if !coreerrors.IsFetch(err) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	var fetchErr *coreerrors.FetchError
	errors.As(err, &fetchErr)
	if fetchErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", fetchErr.StatusCode)
	}
}

func TestExtractFromURL_TransportFailure(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestService(t, client)

	_, err := svc.ExtractFromURL(context.Background(), "https://manhuaus.com/manga/solo-lackey/")
	if !coreerrors.IsFetch(err) {
		t.Errorf("expected fetch error, got %v", err)
	}
}

func TestExtractFromURL_Success(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: detailPage}, nil
		},
		postFunc: func(ctx context.Context, url, contentType string, body io.Reader) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: chapterListFragment}, nil
		},
	}
	svc := newTestService(t, client)

	rec, err := svc.ExtractFromURL(context.Background(), "https://manhuaus.com/manga/solo-lackey/")
	if err != nil {
		t.Fatalf("ExtractFromURL returned error: %v", err)
	}
	if rec.LatestChapterNum != 42 {
		t.Errorf("LatestChapterNum = %v, want 42", rec.LatestChapterNum)
	}
}
