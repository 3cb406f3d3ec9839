// ABOUTME: Pure helpers implementing the ledger's dedupe, cap and cascade rules
// ABOUTME: At most one entry per item, newest first, bounded at MaxLedgerEntries

package tracker

import "mangawatch/core/domain"

// upsertEntry replaces any existing entry for the same item and promotes
// the new entry to the front, then enforces the cap.
func upsertEntry(ledger []domain.UpdateEntry, entry domain.UpdateEntry) []domain.UpdateEntry {
	out := make([]domain.UpdateEntry, 0, len(ledger)+1)
	out = append(out, entry)
	for _, e := range ledger {
		if e.ItemID != entry.ItemID {
			out = append(out, e)
		}
	}

	if len(out) > domain.MaxLedgerEntries {
		out = out[:domain.MaxLedgerEntries]
	}
	return out
}

// removeEntries drops every entry belonging to the given item
func removeEntries(ledger []domain.UpdateEntry, itemID string) []domain.UpdateEntry {
	out := ledger[:0:0]
	for _, e := range ledger {
		if e.ItemID != itemID {
			out = append(out, e)
		}
	}
	return out
}

// markEntriesRead flips the read flag on entries belonging to one item
func markEntriesRead(ledger []domain.UpdateEntry, itemID string) []domain.UpdateEntry {
	for i := range ledger {
		if ledger[i].ItemID == itemID {
			ledger[i].Read = true
		}
	}
	return ledger
}

// markAllEntriesRead flips the read flag on every entry
func markAllEntriesRead(ledger []domain.UpdateEntry) []domain.UpdateEntry {
	for i := range ledger {
		ledger[i].Read = true
	}
	return ledger
}
