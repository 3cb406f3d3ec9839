// ABOUTME: Check cycle orchestrator re-checks every tracked item sequentially
// ABOUTME: Per-item failures are isolated; pacing bounds the request rate

package tracker

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"mangawatch/core/domain"
)

// CycleStats summarizes one completed check cycle
type CycleStats struct {
	// Checked is the number of items processed
	Checked int

	// Updates is the number of detected chapter updates
	Updates int

	// Failures is the number of items whose extraction failed
	Failures int

	// Unread is the badge count published at the end of the cycle
	Unread int
}

// RunCheckCycle re-checks all tracked items, strictly sequentially and
// paced, so the external site sees a bounded request rate. No single
// item's failure aborts the cycle; the badge is always republished at
// the end. The returned error covers only storage failures that prevent
// the cycle from starting.
func (s *Service) RunCheckCycle(ctx context.Context) (CycleStats, error) {
	var stats CycleStats

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return stats, err
	}

	s.mu.Lock()
	items, err := s.loadItems(ctx)
	s.mu.Unlock()
	if err != nil {
		return stats, err
	}

	if len(items) == 0 {
		s.logDebug("check cycle skipped, nothing tracked", nil)
		return stats, nil
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// Burst 1 lets the first item through immediately; every subsequent
	// item waits out the fixed inter-request delay.
	var limiter *rate.Limiter
	if s.pacing > 0 {
		limiter = rate.NewLimiter(rate.Every(s.pacing), 1)
	}

	for _, id := range ids {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				s.logWarn("check cycle interrupted", map[string]interface{}{
					"error": err.Error(),
				})
				break
			}
		}
		s.checkItem(ctx, id, items[id].URL, settings, &stats)
	}

	stats.Unread = s.publishBadge(ctx)

	s.logInfo("check cycle finished", map[string]interface{}{
		"checked":  stats.Checked,
		"updates":  stats.Updates,
		"failures": stats.Failures,
		"unread":   stats.Unread,
	})
	return stats, nil
}

// checkItem extracts one item and folds the result into the store. The
// network round trips happen outside the lock; the store is re-read under
// the lock so an item deregistered mid-check is never resurrected.
func (s *Service) checkItem(ctx context.Context, id, pageURL string, settings domain.Settings, stats *CycleStats) {
	fresh, extractErr := s.extractor.ExtractFromURL(ctx, pageURL)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil {
		s.logError("check skipped, item store unreadable", map[string]interface{}{
			"item":  id,
			"error": err.Error(),
		})
		return
	}

	item, ok := items[id]
	if !ok {
		s.logDebug("item deregistered during check, skipping", map[string]interface{}{
			"item": id,
		})
		return
	}

	stats.Checked++
	cmp := Compare(item, fresh, extractErr)

	// Last-checked always advances, update or not, error or not.
	item.LastChecked = now
	if cmp.LastUpdatedLabel != "" {
		item.LastUpdatedLabel = cmp.LastUpdatedLabel
	}

	if cmp.Err != nil {
		stats.Failures++
		s.logWarn("item check failed", map[string]interface{}{
			"item":  id,
			"error": cmp.Err.Error(),
		})
		items[id] = item
		if err := s.saveItems(ctx, items); err != nil {
			s.logError("failed to persist last-checked", map[string]interface{}{
				"item":  id,
				"error": err.Error(),
			})
		}
		return
	}

	if cmp.HasUpdate {
		stats.Updates++
		item.LatestChapter = cmp.NewLabel
		item.LatestChapterNum = cmp.NewNumber
		item.LatestChapterURL = fresh.LatestChapterURL
		item.Unread = true
	}

	items[id] = item
	if err := s.saveItems(ctx, items); err != nil {
		s.logError("failed to persist item state", map[string]interface{}{
			"item":  id,
			"error": err.Error(),
		})
		return
	}

	if !cmp.HasUpdate {
		return
	}

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		s.logError("ledger unreadable, update not recorded", map[string]interface{}{
			"item":  id,
			"error": err.Error(),
		})
		return
	}

	entry := domain.UpdateEntry{
		ItemID:     id,
		Title:      item.Title,
		Thumbnail:  item.Thumbnail,
		URL:        item.URL,
		OldChapter: cmp.PrevLabel,
		NewChapter: cmp.NewLabel,
		DetectedAt: now,
	}
	if err := s.saveLedger(ctx, upsertEntry(ledger, entry)); err != nil {
		s.logError("failed to persist ledger entry", map[string]interface{}{
			"item":  id,
			"error": err.Error(),
		})
	}

	if settings.NotificationsEnabled && item.NotifyEnabled {
		s.notifyUpdate(ctx, item, cmp)
	}
}

// notifyUpdate emits the fire-and-forget notification for one detection
func (s *Service) notifyUpdate(ctx context.Context, item domain.TrackedItem, cmp Comparison) {
	if s.deps.Notifier == nil {
		return
	}

	body := fmt.Sprintf("%s is out", cmp.NewLabel)
	if err := s.deps.Notifier.Notify(ctx, item.Title, body, item.Thumbnail); err != nil {
		s.logWarn("notification failed", map[string]interface{}{
			"item":  item.ID,
			"error": err.Error(),
		})
	}
}

// publishBadge recomputes the unread count at the end of a cycle and
// logs it; collaborators read the same number through UnreadCount.
func (s *Service) publishBadge(ctx context.Context) int {
	count, err := s.UnreadCount(ctx)
	if err != nil {
		s.logError("badge recompute failed", map[string]interface{}{
			"error": err.Error(),
		})
		return 0
	}

	s.logDebug("badge published", map[string]interface{}{
		"unread": count,
	})
	return count
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
