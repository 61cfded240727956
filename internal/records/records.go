// Package records keeps the player's win/loss record between runs.
package records

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/teh-zombeez/internal/sim"
)

const (
	recordObject   = "records"
	recordProperty = "career"
)

// Record is the lifetime scoreboard.
type Record struct {
	Games     int `yaml:"games"`
	Wins      int `yaml:"wins"`
	Losses    int `yaml:"losses"`
	Kills     int `yaml:"kills"`
	Shots     int `yaml:"shots"`
	MostKills int `yaml:"most_kills"`
	// BestWinFrames is the fastest clear in frames, 0 until the first win.
	BestWinFrames int `yaml:"best_win_frames"`
}

// Store loads and saves a Record through gdata. A nil manager keeps the
// record in memory only.
type Store struct {
	data   *gdata.Manager
	record Record
}

// Open creates the gdata manager for appName and loads the saved record.
// A failure to open storage is returned alongside a working in-memory store.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("failed to open record storage: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps a gdata manager and loads whatever is saved there.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{data: m}
	if err := s.Load(); err != nil {
		log.Printf("[Records] Warning: %v (starting fresh)", err)
	}
	return s
}

// Load replaces the in-memory record with the saved one, if any.
func (s *Store) Load() error {
	s.record = Record{}
	if s.data == nil || !s.data.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}
	data, err := s.data.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	s.record = r
	return nil
}

// Save writes the record. It is a no-op without storage.
func (s *Store) Save() error {
	if s.data == nil {
		return nil
	}
	data, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.data.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Record returns a copy of the current record.
func (s *Store) Record() Record {
	return s.record
}

// Add folds a finished game into the record and reports whether it set a
// new fastest win. Undecided games are ignored.
func (s *Store) Add(sm sim.Summary) (newBest bool) {
	if !sm.Outcome.Terminal() {
		return false
	}
	r := &s.record
	r.Games++
	r.Kills += sm.Kills
	r.Shots += sm.Shots
	if sm.Kills > r.MostKills {
		r.MostKills = sm.Kills
	}
	switch sm.Outcome {
	case sim.PhaseWon:
		r.Wins++
		if r.BestWinFrames == 0 || sm.EndFrame < r.BestWinFrames {
			r.BestWinFrames = sm.EndFrame
			newBest = true
		}
	case sim.PhaseLost:
		r.Losses++
	}
	return newBest
}

// String is a one-line view for the HUD and reports.
func (r Record) String() string {
	best := "-"
	if r.BestWinFrames > 0 {
		best = fmt.Sprintf("%d frames", r.BestWinFrames)
	}
	return fmt.Sprintf("games %d  won %d  lost %d  best %s", r.Games, r.Wins, r.Losses, best)
}
