package sim

import (
	"math/rand"
	"testing"
)

func TestSurvivorMove(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		wantX int
		wantY int
	}{
		{"idle", Input{}, 100, 100},
		{"right", Input{Right: true}, 105, 100},
		{"up left", Input{Up: true, Left: true}, 95, 95},
		{"up and down cancel", Input{Up: true, Down: true}, 100, 100},
		{"all four cancel", Input{Up: true, Down: true, Left: true, Right: true}, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Survivor{Rect: Rect{X: 100, Y: 100, W: 32, H: 32}, Speed: 5}
			s.Move(tt.in, 1280, 800)
			if s.Rect.X != tt.wantX || s.Rect.Y != tt.wantY {
				t.Fatalf("position = (%d,%d), want (%d,%d)", s.Rect.X, s.Rect.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSurvivorMoveStaysOnPlayfield(t *testing.T) {
	s := NewSurvivor(16, 16, 5)
	s.Move(Input{Up: true, Left: true}, 1280, 800)
	if s.Rect.X != 0 || s.Rect.Y != 0 {
		t.Fatalf("survivor left the top-left corner: %+v", s.Rect)
	}

	s = NewSurvivor(1264, 784, 5)
	for i := 0; i < 10; i++ {
		s.Move(Input{Down: true, Right: true}, 1280, 800)
	}
	if s.Rect.Right() != 1280 || s.Rect.Bottom() != 800 {
		t.Fatalf("survivor not pinned to bottom-right: %+v", s.Rect)
	}
}

func TestSurvivorShootSpawnsBulletAtTopLeft(t *testing.T) {
	h := NewHarness(WithSurvivorAt(32, 32))
	st := h.State

	b := st.Survivor.Shoot(st)
	if b.Rect != (Rect{X: 12, Y: 12, W: 8, H: 8}) {
		t.Fatalf("bullet rect = %+v, want centred on (16,16)", b.Rect)
	}
	if b.Speed != 20 {
		t.Fatalf("bullet speed = %d, want 20", b.Speed)
	}
	st.Survivor.Shoot(st)
	if len(st.Bullets) != 2 || st.Shots != 2 {
		t.Fatalf("expected two registered bullets, got %d (shots=%d)", len(st.Bullets), st.Shots)
	}
	if st.Bullets[0].ID == st.Bullets[1].ID {
		t.Fatal("bullets share an ID")
	}
}

func TestZombieReflectsOffWalls(t *testing.T) {
	z := NewZombie(1, 1262, 400, 5, 0)
	z.Move(1280, 800)
	if z.VX != -5 {
		t.Fatalf("VX = %d after hitting right wall, want -5", z.VX)
	}
	if z.Rect.X != 1248 {
		t.Fatalf("X = %d, want clamped to 1248", z.Rect.X)
	}

	z = NewZombie(2, 400, 18, 0, -4)
	z.Move(1280, 800)
	if z.VY != 4 || z.Rect.Y != 0 {
		t.Fatalf("after top wall: VY=%d Y=%d, want VY=4 Y=0", z.VY, z.Rect.Y)
	}
}

func TestZombieFlushAgainstWallKeepsDirection(t *testing.T) {
	z := &Zombie{Rect: Rect{X: 1248, Y: 100, W: 32, H: 32}, VX: 0, VY: 3}
	z.Move(1280, 800)
	if z.VX != 0 || z.VY != 3 {
		t.Fatalf("velocity changed without leaving the playfield: (%d,%d)", z.VX, z.VY)
	}
}

func TestZombieFastTunnelIsClampedBack(t *testing.T) {
	z := &Zombie{Rect: Rect{X: 1240, Y: 100, W: 32, H: 32}, VX: 50}
	z.Move(1280, 800)
	if z.VX != -50 {
		t.Fatalf("VX = %d, want -50", z.VX)
	}
	if z.Rect.X != 1248 {
		t.Fatalf("X = %d, want 1248", z.Rect.X)
	}
}

func TestZombieMoveAlwaysInBounds(t *testing.T) {
	const w, h = 1280, 800
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		z := &Zombie{
			Rect: Rect{X: rng.Intn(3*w) - w, Y: rng.Intn(3*h) - h, W: 32, H: 32},
			VX:   rng.Intn(201) - 100,
			VY:   rng.Intn(201) - 100,
		}
		z.Move(w, h)
		if z.Rect.X < 0 || z.Rect.Y < 0 || z.Rect.Right() > w || z.Rect.Bottom() > h {
			t.Fatalf("zombie escaped after move: %+v", z.Rect)
		}
	}
}

func TestZombieCollideFlipsReceiverOnly(t *testing.T) {
	a := NewZombie(1, 100, 100, 2, 3)
	b := NewZombie(2, 110, 110, -1, 4)
	if !a.Collide(b) {
		t.Fatal("expected overlapping zombies to collide")
	}
	if a.VX != -2 || a.VY != -3 {
		t.Fatalf("a velocity = (%d,%d), want (-2,-3)", a.VX, a.VY)
	}
	if b.VX != -1 || b.VY != 4 {
		t.Fatalf("b velocity changed to (%d,%d)", b.VX, b.VY)
	}

	far := NewZombie(3, 600, 600, 1, 1)
	if a.Collide(far) {
		t.Fatal("distant zombies should not collide")
	}
}

func TestBulletMove(t *testing.T) {
	b := &Bullet{Rect: Rect{X: 1250, Y: 0, W: 8, H: 8}, Speed: 20}
	if b.Move(1280) {
		t.Fatal("bullet at x=1270 reported off-screen")
	}
	if !b.Move(1280) {
		t.Fatal("bullet at x=1290 not reported off-screen")
	}
	b = &Bullet{Rect: Rect{X: 1260, Y: 0, W: 8, H: 8}, Speed: 20}
	if b.Move(1280) {
		t.Fatal("bullet at exactly x=1280 is still on screen")
	}
}

func TestBulletCollidesWithDoesNotMutate(t *testing.T) {
	b := &Bullet{Rect: Rect{X: 10, Y: 10, W: 8, H: 8}, Speed: 20}
	z := NewZombie(1, 20, 20, 0, 0)
	before := *b
	if !b.CollidesWith(z.Rect) {
		t.Fatal("expected collision")
	}
	if *b != before {
		t.Fatalf("bullet mutated: %+v -> %+v", before, *b)
	}
}
