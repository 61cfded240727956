package sim

// Autopilot is a scripted survivor for headless runs: hug the left wall,
// line the gun up with the closest zombie row and hold fire, stepping
// aside when a zombie gets within DangerRadius.
type Autopilot struct {
	DangerRadius int
}

// DefaultAutopilot keeps two zombie widths of clearance.
func DefaultAutopilot() Autopilot {
	return Autopilot{DangerRadius: 2 * zombieSize}
}

// Input picks this frame's controls.
func (a Autopilot) Input(s *State) Input {
	in := Input{Fire: true, Left: true}
	sv := s.Survivor.Rect

	for _, z := range s.Zombies {
		dx := z.Rect.CenterX() - sv.CenterX()
		dy := z.Rect.CenterY() - sv.CenterY()
		if abs(dx) < a.DangerRadius && abs(dy) < a.DangerRadius {
			if dy > 0 || (dy == 0 && sv.Y > 0) {
				in.Up = true
			} else {
				in.Down = true
			}
			return in
		}
	}

	// Bullets leave from the survivor's top edge, so aim that edge at the
	// zombie's centre row.
	var target *Zombie
	best := 0
	for _, z := range s.Zombies {
		d := abs(z.Rect.CenterY() - sv.Y)
		if target == nil || d < best {
			target, best = z, d
		}
	}
	if target == nil {
		return in
	}
	gap := target.Rect.CenterY() - sv.Y
	switch {
	case gap < -s.Survivor.Speed:
		in.Up = true
	case gap > s.Survivor.Speed:
		in.Down = true
	}
	return in
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
