package sim

import (
	"fmt"
	"math/rand"
)

// Phase is the game's win/lose state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (p Phase) Terminal() bool { return p == PhaseWon || p == PhaseLost }

// Input is one frame's worth of sampled controls.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
	Quit  bool
}

// Rules holds the tuning a game is played with.
type Rules struct {
	Width  int
	Height int

	ZombieCount    int
	ZombieMaxSpeed int // initial per-axis speed is drawn from [-max, max]
	SpawnMargin    int // zombie centres keep this far from the walls

	SurvivorStartX int // survivor centre
	SurvivorStartY int
	SurvivorSpeed  int

	BulletSpeed        int
	FireCooldownFrames int

	// MoveAfterWin keeps survivor movement alive once the game is won,
	// matching the old `not lost or won` check.
	MoveAfterWin bool
}

// DefaultRules returns the classic 1280x800, eight-zombie game.
func DefaultRules() Rules {
	return Rules{
		Width:              1280,
		Height:             800,
		ZombieCount:        8,
		ZombieMaxSpeed:     5,
		SpawnMargin:        32,
		SurvivorStartX:     32,
		SurvivorStartY:     32,
		SurvivorSpeed:      5,
		BulletSpeed:        20,
		FireCooldownFrames: 10,
		MoveAfterWin:       true,
	}
}

// cooldownLimit is the counter value at which the gun becomes ready again.
func (r Rules) cooldownLimit() int { return r.FireCooldownFrames + 1 }

// State is everything one game owns. Step is the only thing that mutates it
// once play has started.
type State struct {
	Rules    Rules
	Survivor *Survivor
	Zombies  []*Zombie
	Bullets  []*Bullet
	Phase    Phase
	Cooldown int // 0 = ready

	Frame int
	Kills int
	Shots int
	// EndFrame is the frame on which the phase turned terminal, 0 while playing.
	EndFrame int

	Log *EventLog

	lastID int
}

// New builds a fresh game with randomly placed zombies.
func New(rules Rules, rng *rand.Rand) *State {
	s := newEmpty(rules)
	for i := 0; i < rules.ZombieCount; i++ {
		s.spawnZombie(rng)
	}
	return s
}

func newEmpty(rules Rules) *State {
	sv := NewSurvivor(rules.SurvivorStartX, rules.SurvivorStartY, rules.SurvivorSpeed)
	sv.Rect = Clamp(sv.Rect, rules.Width, rules.Height)
	return &State{
		Rules:    rules,
		Survivor: sv,
		Log:      NewEventLog(false),
	}
}

func (s *State) spawnZombie(rng *rand.Rand) *Zombie {
	r := s.Rules
	m := r.SpawnMargin
	x := randInclusive(rng, m, r.Width-m)
	y := randInclusive(rng, m, r.Height-m)
	vx := randInclusive(rng, -r.ZombieMaxSpeed, r.ZombieMaxSpeed)
	vy := randInclusive(rng, -r.ZombieMaxSpeed, r.ZombieMaxSpeed)
	return s.AddZombie(x, y, vx, vy)
}

// AddZombie registers a zombie centred on (cx, cy).
func (s *State) AddZombie(cx, cy, vx, vy int) *Zombie {
	z := NewZombie(s.nextID(), cx, cy, vx, vy)
	s.Zombies = append(s.Zombies, z)
	s.Log.Add(s.Frame, "spawn", "zombie", z.label(), float64(z.ID))
	return z
}

// Zombie returns the active zombie with the given ID, or nil.
func (s *State) Zombie(id int) *Zombie {
	for _, z := range s.Zombies {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// Bullet returns the active bullet with the given ID, or nil.
func (s *State) Bullet(id int) *Bullet {
	for _, b := range s.Bullets {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *State) nextID() int {
	s.lastID++
	return s.lastID
}

// randInclusive returns an int in [lo, hi]; it returns lo when hi < lo.
func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func entityLabel(kind byte, id int) string {
	return fmt.Sprintf("%c%d", kind, id)
}
