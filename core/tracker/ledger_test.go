package tracker

import (
	"fmt"
	"testing"
	"time"

	"mangawatch/core/domain"
)

func TestUpsertEntry_ReplacesAndPromotes(t *testing.T) {
	ledger := []domain.UpdateEntry{
		{ItemID: "madara:a", NewChapter: "Chapter 1"},
		{ItemID: "madara:b", NewChapter: "Chapter 7"},
	}

	out := upsertEntry(ledger, domain.UpdateEntry{ItemID: "madara:b", NewChapter: "Chapter 8"})

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (replace, not append)", len(out))
	}
	if out[0].ItemID != "madara:b" || out[0].NewChapter != "Chapter 8" {
		t.Errorf("front entry = %+v, want the new madara:b detection", out[0])
	}
	if out[1].ItemID != "madara:a" {
		t.Errorf("second entry = %q, want madara:a", out[1].ItemID)
	}
}

func TestUpsertEntry_CapDropsOldest(t *testing.T) {
	var ledger []domain.UpdateEntry
	for i := 0; i < domain.MaxLedgerEntries; i++ {
		ledger = upsertEntry(ledger, domain.UpdateEntry{
			ItemID: fmt.Sprintf("madara:item-%d", i),
		})
	}
	if len(ledger) != domain.MaxLedgerEntries {
		t.Fatalf("len = %d, want %d", len(ledger), domain.MaxLedgerEntries)
	}

	oldest := ledger[len(ledger)-1].ItemID
	ledger = upsertEntry(ledger, domain.UpdateEntry{ItemID: "madara:one-more"})

	if len(ledger) != domain.MaxLedgerEntries {
		t.Errorf("len = %d, want cap %d", len(ledger), domain.MaxLedgerEntries)
	}
	if ledger[0].ItemID != "madara:one-more" {
		t.Errorf("front = %q, want newest entry", ledger[0].ItemID)
	}
	for _, e := range ledger {
		if e.ItemID == oldest {
			t.Errorf("oldest entry %q survived the cap", oldest)
		}
	}
}

func TestRemoveEntries(t *testing.T) {
	ledger := []domain.UpdateEntry{
		{ItemID: "madara:a"},
		{ItemID: "madara:b"},
		{ItemID: "madara:a"},
	}

	out := removeEntries(ledger, "madara:a")

	if len(out) != 1 || out[0].ItemID != "madara:b" {
		t.Errorf("removeEntries left %+v, want only madara:b", out)
	}
}

func TestMarkEntriesRead(t *testing.T) {
	ledger := []domain.UpdateEntry{
		{ItemID: "madara:a"},
		{ItemID: "madara:b"},
	}

	out := markEntriesRead(ledger, "madara:a")

	if !out[0].Read {
		t.Error("madara:a entry should be read")
	}
	if out[1].Read {
		t.Error("madara:b entry should be untouched")
	}

	out = markAllEntriesRead(out)
	for _, e := range out {
		if !e.Read {
			t.Errorf("entry %q still unread after markAllEntriesRead", e.ItemID)
		}
	}
}

func TestMergeLedgers_DedupesByIdentityAndInstant(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := domain.UpdateEntry{ItemID: "madara:a", DetectedAt: at}
	b := domain.UpdateEntry{ItemID: "madara:b", DetectedAt: at.Add(time.Hour)}

	merged := mergeLedgers([]domain.UpdateEntry{a}, []domain.UpdateEntry{a, b})

	if len(merged) != 2 {
		t.Fatalf("len = %d, want 2", len(merged))
	}
	if merged[0].ItemID != "madara:b" {
		t.Errorf("front = %q, want newest detection first", merged[0].ItemID)
	}
}
