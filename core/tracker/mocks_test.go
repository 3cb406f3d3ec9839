package tracker

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"mangawatch/core/domain"
	"mangawatch/core/interfaces"
)

// mockStorage implements the Storage interface in a map
type mockStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{data: make(map[string][]byte)}
}

func (s *mockStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *mockStorage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *mockStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// seedLedger writes ledger entries directly into storage
func (s *mockStorage) seedLedger(t *testing.T, entries []domain.UpdateEntry) {
	t.Helper()

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("failed to marshal ledger seed: %v", err)
	}
	if err := s.Set(context.Background(), keyLedger, data); err != nil {
		t.Fatalf("failed to seed ledger: %v", err)
	}
}

// mockLogger implements the Logger interface and records nothing
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

// notification records one Notify call
type notification struct {
	title string
	body  string
	icon  string
}

// mockNotifier implements the Notifier interface and records calls
type mockNotifier struct {
	mu    sync.Mutex
	calls []notification
}

func (n *mockNotifier) Notify(ctx context.Context, title, body, icon string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{title: title, body: body, icon: icon})
	return nil
}

func (n *mockNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

// mockExtractor implements the Extractor interface with a per-URL table
type mockExtractor struct {
	records map[string]*domain.ExtractedRecord
	errs    map[string]error
	calls   int
}

func (e *mockExtractor) ExtractFromURL(ctx context.Context, pageURL string) (*domain.ExtractedRecord, error) {
	e.calls++
	if err, ok := e.errs[pageURL]; ok {
		return nil, err
	}
	if rec, ok := e.records[pageURL]; ok {
		return rec, nil
	}
	return &domain.ExtractedRecord{}, nil
}

// newTestService builds a tracker service over fresh mocks with pacing
// disabled
func newTestService(extractor Extractor) (*Service, *mockStorage, *mockNotifier) {
	store := newMockStorage()
	notifier := &mockNotifier{}
	deps := interfaces.Dependencies{
		Storage:  store,
		Logger:   mockLogger{},
		Notifier: notifier,
	}
	return NewService(deps, extractor, 0), store, notifier
}
