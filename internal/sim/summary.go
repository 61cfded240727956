package sim

import "fmt"

// Summary is the scoreboard of one game.
type Summary struct {
	Outcome      Phase
	Frames       int // frames simulated while playing
	EndFrame     int // frame the outcome was decided on, 0 if undecided
	Kills        int
	Shots        int
	ZombiesLeft  int
	ZombiesTotal int
}

// Summarize reads the scoreboard off a state.
func Summarize(s *State) Summary {
	return Summary{
		Outcome:      s.Phase,
		Frames:       s.Frame,
		EndFrame:     s.EndFrame,
		Kills:        s.Kills,
		Shots:        s.Shots,
		ZombiesLeft:  len(s.Zombies),
		ZombiesTotal: s.Kills + len(s.Zombies),
	}
}

// Accuracy is kills per shot fired. A bullet can pass through and kill
// several zombies, so this can exceed 1.
func (sm Summary) Accuracy() float64 {
	if sm.Shots == 0 {
		return 0
	}
	return float64(sm.Kills) / float64(sm.Shots)
}

// Seconds converts the deciding frame to wall time at the given tick rate.
func (sm Summary) Seconds(tps int) float64 {
	if tps <= 0 {
		return 0
	}
	frames := sm.EndFrame
	if frames == 0 {
		frames = sm.Frames
	}
	return float64(frames) / float64(tps)
}

func (sm Summary) String() string {
	return fmt.Sprintf("outcome=%s frames=%d kills=%d/%d shots=%d accuracy=%.2f",
		sm.Outcome, sm.EndFrame, sm.Kills, sm.ZombiesTotal, sm.Shots, sm.Accuracy())
}
