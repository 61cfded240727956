package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/teh-zombeez/internal/sim"
)

const (
	keyFire = ebiten.KeySpace
	keyQuit = ebiten.KeyEscape
	keyHUD  = ebiten.KeyH
	keyCopy = ebiten.KeyC
)

// inputFromKeys maps held keys to one frame of controls. Movement takes
// arrows or WASD; fire is held, the cooldown does the rate limiting.
func inputFromKeys(pressed func(ebiten.Key) bool) sim.Input {
	return sim.Input{
		Up:    pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW),
		Down:  pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS),
		Left:  pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA),
		Right: pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD),
		Fire:  pressed(keyFire),
		Quit:  pressed(keyQuit),
	}
}

// handleToggles processes the edge-triggered extras.
func (g *Game) handleToggles() {
	if inpututil.IsKeyJustPressed(keyHUD) {
		g.showHUD = !g.showHUD
	}
	if g.state.Phase.Terminal() && inpututil.IsKeyJustPressed(keyCopy) {
		g.copySummary()
	}
}
