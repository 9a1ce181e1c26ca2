package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstDeath     BookmarkType = "first_death"
	BookmarkDieOff         BookmarkType = "die_off"
	BookmarkExtinction     BookmarkType = "extinction"
	BookmarkHappinessSlump BookmarkType = "happiness_slump"
	BookmarkSettled        BookmarkType = "settled"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in a population run.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	sawDeath           bool
	extinct            bool
	recentAlivePeak    int // peak living count since the last die-off
	settledWindowCount int // consecutive windows with steady happiness
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for settled detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFirstDeath(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkDieOff(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkHappinessSlump(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSettled(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	if stats.Alive > bd.recentAlivePeak {
		bd.recentAlivePeak = stats.Alive
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFirstDeath(stats WindowStats) *Bookmark {
	if bd.sawDeath || stats.Deaths == 0 {
		return nil
	}
	bd.sawDeath = true
	return &Bookmark{
		Type:        BookmarkFirstDeath,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("First death (%d by age, %d by energy)", stats.DeathsAge, stats.DeathsEnergy),
	}
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if bd.extinct || stats.Alive > 0 || stats.Dead == 0 {
		return nil
	}
	bd.extinct = true
	return &Bookmark{
		Type:        BookmarkExtinction,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("All %d creatures have died", stats.Dead),
	}
}

func (bd *BookmarkDetector) checkDieOff(stats WindowStats) *Bookmark {
	if bd.recentAlivePeak < 4 {
		return nil
	}

	dropPercent := 1.0 - float64(stats.Alive)/float64(bd.recentAlivePeak)
	if dropPercent > 0.30 {
		// Reset peak after a die-off
		oldPeak := bd.recentAlivePeak
		bd.recentAlivePeak = stats.Alive

		return &Bookmark{
			Type:        BookmarkDieOff,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Population fell %.0f%% from %d to %d", dropPercent*100, oldPeak, stats.Alive),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkHappinessSlump(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 || stats.Alive == 0 {
		return nil
	}

	var total float64
	var n int
	for _, h := range history {
		if h.Alive > 0 {
			total += h.HappinessMean
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := total / float64(n)

	if avg > 0 && stats.HappinessMean < avg*0.5 {
		return &Bookmark{
			Type:        BookmarkHappinessSlump,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Mean happiness %.1f is under half the rolling average (%.1f)", stats.HappinessMean, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkSettled(stats WindowStats) *Bookmark {
	if stats.Alive == 0 {
		bd.settledWindowCount = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}

	recent := history[len(history)-4:]
	var sum float64
	for _, h := range recent {
		sum += h.HappinessMean
	}
	mean := sum / 4

	var variance float64
	for _, h := range recent {
		d := h.HappinessMean - mean
		variance += d * d
	}
	variance /= 4

	cv2 := 0.0
	if mean > 0 {
		cv2 = variance / (mean * mean)
	}

	if mean > 0 && cv2 < 0.01 { // CV^2 < 0.01 means CV < 0.1
		bd.settledWindowCount++
	} else {
		bd.settledWindowCount = 0
	}

	if bd.settledWindowCount == 5 { // trigger exactly once at 5 windows
		return &Bookmark{
			Type:        BookmarkSettled,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Happiness steady around %.1f over 5+ windows", mean),
		}
	}
	return nil
}
