package sim

import "github.com/solarlune/resolv"

const (
	hitCellSize = 32
	// hitPadding shifts every shape into the space so bullets spawned at the
	// left wall or flying past the right wall still land in valid cells.
	hitPadding = 64
)

var tagZombie = resolv.NewTag("zombie")

// hitIndex buckets the frame's zombies into a resolv cell grid so a probe
// rect only gets tested against zombies in the cells it touches.
type hitIndex struct {
	space   *resolv.Space
	zombies map[resolv.IShape]*Zombie
}

func newHitIndex(w, h int, zombies []*Zombie) *hitIndex {
	idx := &hitIndex{
		space:   resolv.NewSpace(w+2*hitPadding, h+2*hitPadding, hitCellSize, hitCellSize),
		zombies: make(map[resolv.IShape]*Zombie, len(zombies)),
	}
	for _, z := range zombies {
		sh := resolv.NewRectangleTopLeft(padded(z.Rect))
		sh.Tags().Set(tagZombie)
		idx.space.Add(sh)
		idx.zombies[sh] = z
	}
	return idx
}

func padded(r Rect) (x, y, w, h float64) {
	return float64(r.X + hitPadding), float64(r.Y + hitPadding), float64(r.W), float64(r.H)
}

// overlapping calls fn once for every indexed zombie whose rect overlaps r.
// The cell grid only narrows the candidates; Rect.Overlaps has the last word.
func (idx *hitIndex) overlapping(r Rect, fn func(z *Zombie)) {
	probe := resolv.NewRectangleTopLeft(padded(r))
	idx.space.Add(probe)
	defer idx.space.Remove(probe)

	seen := make(map[int]bool)
	probe.SelectTouchingCells(0).FilterShapes().ByTags(tagZombie).ForEach(func(sh resolv.IShape) bool {
		z := idx.zombies[sh]
		if z == nil || seen[z.ID] {
			return true
		}
		seen[z.ID] = true
		if r.Overlaps(z.Rect) {
			fn(z)
		}
		return true
	})
}

// any reports whether r overlaps at least one indexed zombie.
func (idx *hitIndex) any(r Rect) bool {
	hit := false
	idx.overlapping(r, func(*Zombie) { hit = true })
	return hit
}
