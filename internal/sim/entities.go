package sim

// Sprite sizes in pixels.
const (
	survivorSize = 32
	zombieSize   = 32
	bulletSize   = 8
)

// Survivor is the player-controlled sprite.
type Survivor struct {
	Rect  Rect
	Speed int
}

// NewSurvivor places a survivor centred on (cx, cy).
func NewSurvivor(cx, cy, speed int) *Survivor {
	return &Survivor{Rect: rectFromCenter(cx, cy, survivorSize, survivorSize), Speed: speed}
}

// Move applies the held direction keys one after another and re-clamps.
// Opposing keys cancel because both deltas are applied.
func (s *Survivor) Move(in Input, w, h int) {
	if in.Up {
		s.Rect.Y -= s.Speed
	}
	if in.Down {
		s.Rect.Y += s.Speed
	}
	if in.Left {
		s.Rect.X -= s.Speed
	}
	if in.Right {
		s.Rect.X += s.Speed
	}
	s.Rect = Clamp(s.Rect, w, h)
}

// Shoot registers one new bullet centred on the survivor's top-left corner.
// Rate limiting is the caller's job.
func (s *Survivor) Shoot(st *State) *Bullet {
	b := &Bullet{
		ID:    st.nextID(),
		Rect:  rectFromCenter(s.Rect.X, s.Rect.Y, bulletSize, bulletSize),
		Speed: st.Rules.BulletSpeed,
	}
	st.Bullets = append(st.Bullets, b)
	st.Shots++
	st.Log.Add(st.Frame, "fire", "spawn", b.label(), float64(b.Rect.X))
	return b
}

// Zombie bounces around the playfield at constant velocity.
type Zombie struct {
	ID   int
	Rect Rect
	VX   int
	VY   int
}

// NewZombie places a zombie centred on (cx, cy) with the given velocity.
func NewZombie(id, cx, cy, vx, vy int) *Zombie {
	return &Zombie{ID: id, Rect: rectFromCenter(cx, cy, zombieSize, zombieSize), VX: vx, VY: vy}
}

// Move advances the zombie one frame. A wall hit flips the velocity on that
// axis, decided before clamping, so a fast zombie may poke past the wall for
// the test and only gets pulled back by the clamp.
func (z *Zombie) Move(w, h int) {
	z.Rect.X += z.VX
	z.Rect.Y += z.VY
	if z.Rect.X < 0 || z.Rect.Right() > w {
		z.VX = -z.VX
	}
	if z.Rect.Y < 0 || z.Rect.Bottom() > h {
		z.VY = -z.VY
	}
	z.Rect = Clamp(z.Rect, w, h)
}

// Collide reverses both velocity components of z when it overlaps other.
// Only z changes; the scan visits (other, z) separately.
func (z *Zombie) Collide(other *Zombie) bool {
	if !z.Rect.Overlaps(other.Rect) {
		return false
	}
	z.VX = -z.VX
	z.VY = -z.VY
	return true
}

func (z *Zombie) label() string { return entityLabel('Z', z.ID) }

// Bullet flies right at a fixed speed until it leaves the playfield.
type Bullet struct {
	ID    int
	Rect  Rect
	Speed int
}

// Move advances the bullet and reports whether it has left the playfield.
func (b *Bullet) Move(w int) (offscreen bool) {
	b.Rect.X += b.Speed
	return b.Rect.X > w
}

// CollidesWith is a pure overlap test against r.
func (b *Bullet) CollidesWith(r Rect) bool {
	return b.Rect.Overlaps(r)
}

func (b *Bullet) label() string { return entityLabel('B', b.ID) }
