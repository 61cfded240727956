package sim

import "errors"

// ErrQuit is returned by Step when the frame's input asks to leave the game.
var ErrQuit = errors.New("sim: quit requested")

// Step runs one frame of the game.
//
// While playing, the order is: cooldown, quit, fire, survivor movement,
// zombie and bullet movement, win check, lose check, zombie bounces, bullet
// hits. Once the phase is terminal only quit is honoured, plus survivor
// movement after a win when Rules.MoveAfterWin is set.
func Step(s *State, in Input) error {
	w, h := s.Rules.Width, s.Rules.Height

	if s.Phase.Terminal() {
		if in.Quit {
			return ErrQuit
		}
		if s.Phase == PhaseWon && s.Rules.MoveAfterWin {
			s.Survivor.Move(in, w, h)
		}
		return nil
	}

	s.Frame++
	s.advanceCooldown()

	if in.Quit {
		return ErrQuit
	}

	if in.Fire && s.Cooldown == 0 {
		s.Survivor.Shoot(s)
		s.Cooldown++
	}

	s.Survivor.Move(in, w, h)
	s.Log.AddVerbose(s.Frame, "move", "survivor_x", "S", float64(s.Survivor.Rect.X))
	s.Log.AddVerbose(s.Frame, "move", "survivor_y", "S", float64(s.Survivor.Rect.Y))

	for _, z := range s.Zombies {
		z.Move(w, h)
	}
	s.moveBullets()

	if len(s.Zombies) == 0 {
		s.finish(PhaseWon)
	}

	idx := newHitIndex(w, h, s.Zombies)
	if s.Phase == PhasePlaying && idx.any(s.Survivor.Rect) {
		s.finish(PhaseLost)
	}

	s.bounceZombies()
	s.resolveHits(idx)
	return nil
}

// advanceCooldown counts the gun back up to ready. The counter sits at 0
// until a shot starts it.
func (s *State) advanceCooldown() {
	limit := s.Rules.cooldownLimit()
	if s.Cooldown > 0 && s.Cooldown < limit {
		s.Cooldown++
	} else if s.Cooldown >= limit {
		s.Cooldown = 0
	}
}

func (s *State) moveBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Move(s.Rules.Width) {
			s.Log.Add(s.Frame, "fire", "offscreen", b.label(), float64(b.Rect.X))
			continue
		}
		kept = append(kept, b)
	}
	clearTail(s.Bullets, len(kept))
	s.Bullets = kept
}

// bounceZombies visits every ordered pair once. A zombie touching k others
// flips k times, so the effect is cumulative rather than idempotent.
func (s *State) bounceZombies() {
	for i, z := range s.Zombies {
		for j, other := range s.Zombies {
			if i == j {
				continue
			}
			if z.Collide(other) {
				s.Log.AddVerbose(s.Frame, "combat", "bounce", z.label(), float64(other.ID))
			}
		}
	}
}

// resolveHits destroys every zombie touched by any bullet. Bullets carry on.
// Removals are collected first and applied once the scan is done.
func (s *State) resolveHits(idx *hitIndex) {
	hitBy := make(map[int]int)
	for _, b := range s.Bullets {
		idx.overlapping(b.Rect, func(z *Zombie) {
			if _, dup := hitBy[z.ID]; !dup {
				hitBy[z.ID] = b.ID
			}
		})
	}
	if len(hitBy) == 0 {
		return
	}

	kept := s.Zombies[:0]
	for _, z := range s.Zombies {
		if bulletID, dead := hitBy[z.ID]; dead {
			s.Kills++
			s.Log.Add(s.Frame, "combat", "kill", z.label(), float64(bulletID))
			continue
		}
		kept = append(kept, z)
	}
	clearTail(s.Zombies, len(kept))
	s.Zombies = kept
}

func (s *State) finish(p Phase) {
	s.Phase = p
	s.EndFrame = s.Frame
	s.Log.Add(s.Frame, "phase", p.String(), "--", float64(s.Kills))
}

// clearTail nils out the slots past n after an in-place filter so dropped
// entities can be collected.
func clearTail[T any](xs []*T, n int) {
	for i := n; i < len(xs); i++ {
		xs[i] = nil
	}
}
