// ABOUTME: Tracker service owns the persisted item store and update ledger
// ABOUTME: All mutations are serialized through one lock to keep read-modify-write safe

package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"mangawatch/core/domain"
	coreerrors "mangawatch/core/errors"
	"mangawatch/core/interfaces"
)

// Storage keys for the three persisted collections
const (
	keyItems    = "items"
	keySettings = "settings"
	keyLedger   = "ledger"
)

// Extractor is the slice of the extraction service the check cycle needs
type Extractor interface {
	ExtractFromURL(ctx context.Context, pageURL string) (*domain.ExtractedRecord, error)
}

// Service implements every operation over tracked items, settings, the
// update ledger, and the periodic check cycle. It is the single writer of
// the three storage keys; user-triggered mutations and the cycle contend
// on one mutex so a delete can never interleave with a cycle's
// read-modify-write of the same item.
type Service struct {
	deps      interfaces.Dependencies
	extractor Extractor
	pacing    time.Duration

	mu sync.Mutex
}

// NewService creates a tracker service. pacing is the fixed delay between
// consecutive item checks in a cycle; 0 disables pacing (tests).
func NewService(deps interfaces.Dependencies, extractor Extractor, pacing time.Duration) *Service {
	if pacing < 0 {
		pacing = 0
	}
	return &Service{
		deps:      deps,
		extractor: extractor,
		pacing:    pacing,
	}
}

// Register upserts an already-extracted item into the store. The record
// is trusted as-is; registration never re-fetches the page.
func (s *Service) Register(ctx context.Context, item domain.TrackedItem) (*domain.TrackedItem, error) {
	if err := item.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "item", Message: err.Error()}
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.LastChecked.IsZero() {
		item.LastChecked = now
	}
	if item.Title == "" {
		item.Title = domain.UnknownTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}

	items[item.ID] = item
	if err := s.saveItems(ctx, items); err != nil {
		return nil, err
	}

	return &item, nil
}

// Deregister removes an item and cascades the removal to its ledger
// entries
func (s *Service) Deregister(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return err
	}

	if _, ok := items[id]; !ok {
		return &coreerrors.NotFoundError{Resource: "item", ID: id}
	}

	delete(items, id)
	if err := s.saveItems(ctx, items); err != nil {
		return err
	}

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return err
	}
	return s.saveLedger(ctx, removeEntries(ledger, id))
}

// Exists reports whether an item is currently tracked
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return false, err
	}
	_, ok := items[id]
	return ok, nil
}

// ListItems returns all tracked items, newest registration first
func (s *Service) ListItems(ctx context.Context) ([]domain.TrackedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]domain.TrackedItem, 0, len(items))
	for _, item := range items {
		list = append(list, item)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})

	return list, nil
}

// ListLedger returns the update ledger in recency order, newest first
func (s *Service) ListLedger(ctx context.Context) ([]domain.UpdateEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLedger(ctx)
}

// MarkRead clears the unread flag on one item and on its ledger entries.
// The two flags are kept independently consistent, not derived.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return err
	}

	item, ok := items[id]
	if !ok {
		return &coreerrors.NotFoundError{Resource: "item", ID: id}
	}

	item.Unread = false
	items[id] = item
	if err := s.saveItems(ctx, items); err != nil {
		return err
	}

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return err
	}
	return s.saveLedger(ctx, markEntriesRead(ledger, id))
}

// MarkAllRead clears every unread flag on items and ledger entries
func (s *Service) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return err
	}
	for id, item := range items {
		item.Unread = false
		items[id] = item
	}
	if err := s.saveItems(ctx, items); err != nil {
		return err
	}

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return err
	}
	return s.saveLedger(ctx, markAllEntriesRead(ledger))
}

// ToggleNotify sets the per-item notification toggle
func (s *Service) ToggleNotify(ctx context.Context, id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return err
	}

	item, ok := items[id]
	if !ok {
		return &coreerrors.NotFoundError{Resource: "item", ID: id}
	}

	item.NotifyEnabled = enabled
	items[id] = item
	return s.saveItems(ctx, items)
}

// UnreadCount returns the number of items with undetected-by-user updates;
// this is what the badge publishes after each cycle
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range items {
		if item.Unread {
			count++
		}
	}
	return count, nil
}

// loadItems reads the item map; an unwritten key is an empty map
func (s *Service) loadItems(ctx context.Context) (map[string]domain.TrackedItem, error) {
	data, err := s.deps.Storage.Get(ctx, keyItems)
	if errors.Is(err, interfaces.ErrKeyNotFound) {
		return map[string]domain.TrackedItem{}, nil
	}
	if err != nil {
		return nil, coreerrors.WrapError(err, "load items")
	}

	var items map[string]domain.TrackedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, coreerrors.WrapError(err, "decode items")
	}
	if items == nil {
		items = map[string]domain.TrackedItem{}
	}
	return items, nil
}

func (s *Service) saveItems(ctx context.Context, items map[string]domain.TrackedItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return coreerrors.WrapError(err, "encode items")
	}
	return coreerrors.WrapError(s.deps.Storage.Set(ctx, keyItems, data), "save items")
}

// loadLedger reads the update ledger; an unwritten key is an empty list
func (s *Service) loadLedger(ctx context.Context) ([]domain.UpdateEntry, error) {
	data, err := s.deps.Storage.Get(ctx, keyLedger)
	if errors.Is(err, interfaces.ErrKeyNotFound) {
		return []domain.UpdateEntry{}, nil
	}
	if err != nil {
		return nil, coreerrors.WrapError(err, "load ledger")
	}

	var ledger []domain.UpdateEntry
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, coreerrors.WrapError(err, "decode ledger")
	}
	return ledger, nil
}

func (s *Service) saveLedger(ctx context.Context, ledger []domain.UpdateEntry) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return coreerrors.WrapError(err, "encode ledger")
	}
	return coreerrors.WrapError(s.deps.Storage.Set(ctx, keyLedger, data), "save ledger")
}
