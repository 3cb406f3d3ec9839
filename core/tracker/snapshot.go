// ABOUTME: Versioned export and import of all persisted watcher state
// ABOUTME: Replace mode overwrites; merge mode unions with ledger dedupe

package tracker

import (
	"context"
	"sort"
	"time"

	"mangawatch/core/domain"
	coreerrors "mangawatch/core/errors"
)

// ExportSnapshot produces a point-in-time copy of items, settings and
// the ledger under one version tag
func (s *Service) ExportSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Version:    domain.SnapshotVersion,
		ExportedAt: time.Now(),
		Items:      items,
		Settings:   settings,
		Ledger:     ledger,
	}, nil
}

// ImportSnapshot restores a snapshot. In replace mode all three
// collections are overwritten. In merge mode items are unioned with the
// imported side winning on key collisions, and ledger entries are
// unioned deduplicating by (item, detection instant), re-sorted newest
// first and re-truncated to the cap. Merge mode leaves settings alone.
func (s *Service) ImportSnapshot(ctx context.Context, snap domain.Snapshot, merge bool) error {
	if snap.Version != domain.SnapshotVersion {
		return &coreerrors.InvalidSnapshotError{Version: snap.Version}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !merge {
		items := snap.Items
		if items == nil {
			items = map[string]domain.TrackedItem{}
		}
		if err := s.saveItems(ctx, items); err != nil {
			return err
		}

		settings := snap.Settings
		settings.Normalize()
		if err := s.saveSettings(ctx, settings); err != nil {
			return err
		}

		ledger := snap.Ledger
		if len(ledger) > domain.MaxLedgerEntries {
			ledger = ledger[:domain.MaxLedgerEntries]
		}
		return s.saveLedger(ctx, ledger)
	}

	items, err := s.loadItems(ctx)
	if err != nil {
		return err
	}
	for id, item := range snap.Items {
		items[id] = item
	}
	if err := s.saveItems(ctx, items); err != nil {
		return err
	}

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return err
	}
	return s.saveLedger(ctx, mergeLedgers(ledger, snap.Ledger))
}

// mergeLedgers unions two ledgers, dropping duplicates by
// (item, detection instant), then restores recency order and the cap.
// Sorting by detection instant makes the merge independent of which side
// a disjoint entry came from.
func mergeLedgers(existing, imported []domain.UpdateEntry) []domain.UpdateEntry {
	type ledgerKey struct {
		itemID     string
		detectedAt int64
	}

	seen := make(map[ledgerKey]bool, len(existing)+len(imported))
	merged := make([]domain.UpdateEntry, 0, len(existing)+len(imported))

	for _, e := range append(append([]domain.UpdateEntry{}, existing...), imported...) {
		key := ledgerKey{itemID: e.ItemID, detectedAt: e.DetectedAt.UnixNano()}
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, e)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DetectedAt.After(merged[j].DetectedAt)
	})

	if len(merged) > domain.MaxLedgerEntries {
		merged = merged[:domain.MaxLedgerEntries]
	}
	return merged
}
