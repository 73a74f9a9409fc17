package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFullCurl    BookmarkType = "full_curl"
	BookmarkStrideBurst BookmarkType = "stride_burst"
	BookmarkAtRest      BookmarkType = "at_rest"
	BookmarkLinkDrift   BookmarkType = "link_drift"
)

// linkDriftTolerance is the relative link error above which a chain is
// considered to have lost its shape.
const linkDriftTolerance = 1e-6

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Creature    string       `csv:"creature"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"creature", b.Creature,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting windows.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	resting bool // at_rest already reported for the current rest
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkLinkDrift(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkFullCurl(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStrideBurst(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkAtRest(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
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

func (bd *BookmarkDetector) checkLinkDrift(stats WindowStats) *Bookmark {
	worst := max(stats.LinkErrorMax, stats.LimbErrorMax)
	if worst <= linkDriftTolerance {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkLinkDrift,
		Tick:        stats.WindowEndTick,
		Creature:    stats.Creature,
		Description: fmt.Sprintf("Link length drifted by %.2g of link size", worst),
	}
}

// checkFullCurl fires when the spine spent most of the window pressed
// against its bend limit.
func (bd *BookmarkDetector) checkFullCurl(stats WindowStats) *Bookmark {
	if stats.Frames == 0 || stats.BendP90 < 0.95 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkFullCurl,
		Tick:        stats.WindowEndTick,
		Creature:    stats.Creature,
		Description: fmt.Sprintf("Spine at %.0f%% of its bend limit for most of the window", stats.BendP90*100),
	}
}

func (bd *BookmarkDetector) checkStrideBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Steps
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Steps) > avg*2.0 && stats.Steps >= 4 {
		return &Bookmark{
			Type:        BookmarkStrideBurst,
			Tick:        stats.WindowEndTick,
			Creature:    stats.Creature,
			Description: fmt.Sprintf("%d steps is %.1fx average (%.1f)", stats.Steps, float64(stats.Steps)/avg, avg),
		}
	}
	return nil
}

// checkAtRest fires once when a whole window passes without movement.
func (bd *BookmarkDetector) checkAtRest(stats WindowStats) *Bookmark {
	still := stats.Frames > 0 && stats.IdleFrames >= stats.Frames
	if !still {
		bd.resting = false
		return nil
	}
	if bd.resting {
		return nil
	}
	bd.resting = true
	return &Bookmark{
		Type:        BookmarkAtRest,
		Tick:        stats.WindowEndTick,
		Creature:    stats.Creature,
		Description: fmt.Sprintf("%s held still for %d frames", stats.Creature, stats.Frames),
	}
}
