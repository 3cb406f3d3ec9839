package tracker

import (
	"errors"
	"testing"

	"mangawatch/core/domain"
)

func TestCompare_StrictlyGreaterFlagsUpdate(t *testing.T) {
	stored := domain.TrackedItem{LatestChapter: "Chapter 40", LatestChapterNum: 40}
	fresh := &domain.ExtractedRecord{LatestChapter: "Chapter 42", LatestChapterNum: 42}

	cmp := Compare(stored, fresh, nil)

	if !cmp.HasUpdate {
		t.Error("expected update for strictly greater chapter number")
	}
	if cmp.PrevLabel != "Chapter 40" || cmp.NewLabel != "Chapter 42" {
		t.Errorf("labels = %q -> %q", cmp.PrevLabel, cmp.NewLabel)
	}
	if cmp.NewNumber != 42 {
		t.Errorf("NewNumber = %v, want 42", cmp.NewNumber)
	}
}

func TestCompare_EqualIsNotUpdate(t *testing.T) {
	stored := domain.TrackedItem{LatestChapterNum: 42}
	fresh := &domain.ExtractedRecord{LatestChapterNum: 42}

	if Compare(stored, fresh, nil).HasUpdate {
		t.Error("equal chapter numbers must not flag an update")
	}
}

func TestCompare_LowerIsNotUpdate(t *testing.T) {
	stored := domain.TrackedItem{LatestChapterNum: 42}
	fresh := &domain.ExtractedRecord{LatestChapterNum: 41}

	if Compare(stored, fresh, nil).HasUpdate {
		t.Error("lower chapter number must not flag an update")
	}
}

func TestCompare_ParseMissNeverRegresses(t *testing.T) {
	stored := domain.TrackedItem{LatestChapterNum: 42}
	fresh := &domain.ExtractedRecord{LatestChapterNum: 0}

	if Compare(stored, fresh, nil).HasUpdate {
		t.Error("a parse miss (0) must not flag an update")
	}
}

func TestCompare_FractionalProgress(t *testing.T) {
	stored := domain.TrackedItem{LatestChapterNum: 3}
	fresh := &domain.ExtractedRecord{LatestChapter: "Chapter 3.5", LatestChapterNum: 3.5}

	if !Compare(stored, fresh, nil).HasUpdate {
		t.Error("3.5 over 3 must flag an update")
	}
}

func TestCompare_ExtractionErrorShortCircuits(t *testing.T) {
	stored := domain.TrackedItem{LatestChapterNum: 40}
	extractErr := errors.New("fetch failed")

	cmp := Compare(stored, &domain.ExtractedRecord{LatestChapterNum: 99}, extractErr)

	if cmp.HasUpdate {
		t.Error("extraction error must short-circuit to no update")
	}
	if cmp.Err == nil {
		t.Error("expected error payload attached for logging")
	}
}

func TestCompare_NilRecordIsNoUpdate(t *testing.T) {
	cmp := Compare(domain.TrackedItem{}, nil, nil)

	if cmp.HasUpdate {
		t.Error("nil record must not flag an update")
	}
}
