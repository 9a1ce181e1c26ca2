package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FirstDeathOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if got := bd.Check(WindowStats{WindowEndTick: 600, Alive: 3}); len(got) != 0 {
		t.Errorf("unexpected bookmarks %v", got)
	}

	got := bd.Check(WindowStats{WindowEndTick: 1200, Alive: 2, Dead: 1, Deaths: 1, DeathsEnergy: 1})
	if !hasBookmark(got, BookmarkFirstDeath) {
		t.Error("expected first_death bookmark")
	}

	got = bd.Check(WindowStats{WindowEndTick: 1800, Alive: 1, Dead: 2, Deaths: 1})
	if hasBookmark(got, BookmarkFirstDeath) {
		t.Error("first_death should fire once")
	}
}

func TestBookmarkDetector_Extinction(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{WindowEndTick: 600, Alive: 1})

	got := bd.Check(WindowStats{WindowEndTick: 1200, Dead: 1, Deaths: 1})
	if !hasBookmark(got, BookmarkExtinction) {
		t.Error("expected extinction bookmark")
	}
	if got := bd.Check(WindowStats{WindowEndTick: 1800, Dead: 1}); hasBookmark(got, BookmarkExtinction) {
		t.Error("extinction should fire once")
	}
}

func TestBookmarkDetector_DieOff(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 3; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Alive: 20})
	}

	got := bd.Check(WindowStats{WindowEndTick: 1800, Alive: 12, Dead: 8, Deaths: 8})
	if !hasBookmark(got, BookmarkDieOff) {
		t.Error("expected die_off bookmark after a 40% drop")
	}

	// Peak was reset to 12; a small further drop is not a die-off
	got = bd.Check(WindowStats{WindowEndTick: 2400, Alive: 10, Dead: 10, Deaths: 2})
	if hasBookmark(got, BookmarkDieOff) {
		t.Error("unexpected die_off after peak reset")
	}
}

func TestBookmarkDetector_HappinessSlump(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 4; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Alive: 5, HappinessMean: 60})
	}

	got := bd.Check(WindowStats{WindowEndTick: 2400, Alive: 5, HappinessMean: 20})
	if !hasBookmark(got, BookmarkHappinessSlump) {
		t.Error("expected happiness_slump bookmark")
	}
}

func TestBookmarkDetector_Settled(t *testing.T) {
	bd := NewBookmarkDetector(10)

	var fired int
	for i := 0; i < 15; i++ {
		got := bd.Check(WindowStats{WindowEndTick: int32(i * 600), Alive: 5, HappinessMean: 50})
		if hasBookmark(got, BookmarkSettled) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("settled fired %d times, want exactly 1", fired)
	}
}
