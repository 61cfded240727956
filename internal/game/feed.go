package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/teh-zombeez/internal/sim"
)

const (
	feedPanelWidth = 220
	feedMaxEntries = 8
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame   int
	Message string
}

// Feed keeps the last feedMaxEntries HUD lines, oldest first.
type Feed struct {
	entries []FeedEntry
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{entries: make([]FeedEntry, 0, feedMaxEntries)}
}

// Add appends an entry, dropping the oldest when full.
func (f *Feed) Add(frame int, msg string) {
	if len(f.entries) == feedMaxEntries {
		copy(f.entries, f.entries[1:])
		f.entries = f.entries[:feedMaxEntries-1]
	}
	f.entries = append(f.entries, FeedEntry{Frame: frame, Message: msg})
}

// Recent returns a copy of the entries, oldest first.
func (f *Feed) Recent() []FeedEntry {
	return append([]FeedEntry(nil), f.entries...)
}

// feedMessage turns a sim event into a feed line; ok is false for events
// that are too chatty for the HUD.
func feedMessage(e sim.Event) (msg string, ok bool) {
	switch {
	case e.Category == "combat" && e.Key == "kill":
		return fmt.Sprintf("%s down (B%d)", e.Entity, int(e.NumVal)), true
	case e.Category == "phase":
		return fmt.Sprintf("game %s, %d kills", e.Key, int(e.NumVal)), true
	default:
		return "", false
	}
}

// Draw renders the feed in the top-right corner.
func (f *Feed) Draw(screen *ebiten.Image, screenW int) {
	entries := f.Recent()
	if len(entries) == 0 {
		return
	}
	x := float32(screenW - feedPanelWidth - 8)
	h := float32(len(entries)*feedLineHeight + 8)
	vector.FillRect(screen, x, 8, feedPanelWidth, h, color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, x, 8, feedPanelWidth, h, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)

	y := 12
	for _, e := range entries {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %s", e.Frame, e.Message), int(x)+6, y)
		y += feedLineHeight
	}
}
