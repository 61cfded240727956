package sim

import (
	"fmt"
	"strings"
)

// Event is one thing that happened during a frame.
type Event struct {
	Frame    int
	Category string // spawn, fire, move, combat, phase
	Key      string // event name within the category
	Entity   string // "Z3", "B12", "S" or "--"
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[F=031] Z1   combat   kill             31
func (e Event) String() string {
	return fmt.Sprintf("[F=%03d] %-4s %-8s %-16s %g",
		e.Frame, e.Entity, e.Category, e.Key, e.NumVal)
}

// EventLog collects events for tests, the headless report and the HUD feed.
// It is unbounded; keep verbose off for long runs.
type EventLog struct {
	entries []Event
	verbose bool
}

// NewEventLog creates a log. Verbose logs also record per-frame positions.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records an event.
func (l *EventLog) Add(frame int, category, key, entity string, numVal float64) {
	l.entries = append(l.entries, Event{
		Frame:    frame,
		Category: category,
		Key:      key,
		Entity:   entity,
		NumVal:   numVal,
	})
}

// AddVerbose records an event only when verbose mode is on.
func (l *EventLog) AddVerbose(frame int, category, key, entity string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(frame, category, key, entity, numVal)
}

// Entries returns all recorded events.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Since returns the events recorded at or after index n, and the next index.
func (l *EventLog) Since(n int) ([]Event, int) {
	if n < 0 {
		n = 0
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[n:], len(l.entries)
}

// Filter returns events matching category and key. Empty strings match anything.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count is len(Filter(category, key)) without the allocation.
func (l *EventLog) Count(category, key string) int {
	n := 0
	for _, e := range l.entries {
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			n++
		}
	}
	return n
}

// Dump renders every entry, one per line.
func (l *EventLog) Dump() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
