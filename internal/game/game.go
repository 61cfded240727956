package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/teh-zombeez/internal/config"
	"github.com/Garsondee/teh-zombeez/internal/records"
	"github.com/Garsondee/teh-zombeez/internal/sim"
)

// Game adapts a sim.State to ebiten's loop. Screen clearing must be off
// (ebiten.SetScreenClearedEveryFrame(false)) so the end message lands on
// top of the last live frame.
type Game struct {
	cfg     *config.Config
	state   *sim.State
	sprites *sprites
	face    *text.GoTextFace
	sound   *soundBoard
	records *records.Store
	feed    *Feed

	logCursor int // next sim event to forward to the feed
	showHUD   bool
}

// New builds a game from cfg. Missing sprites or font are fatal; store may
// be nil to skip the lifetime record.
func New(cfg *config.Config, store *records.Store) (*Game, error) {
	spr, err := loadSprites(cfg.Assets)
	if err != nil {
		return nil, err
	}
	face, err := newMessageFace()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only

	g := &Game{
		cfg:     cfg,
		state:   sim.New(cfg.Rules(), rng),
		sprites: spr,
		face:    face,
		records: store,
		feed:    NewFeed(),
	}
	if cfg.Audio {
		g.sound = newSoundBoard()
	}
	log.Printf("[Game] seed=%d zombies=%d", seed, len(g.state.Zombies))
	return g, nil
}

func (g *Game) Update() error {
	g.handleToggles()

	wasOver := g.state.Phase.Terminal()
	if err := sim.Step(g.state, inputFromKeys(ebiten.IsKeyPressed)); err != nil {
		if errors.Is(err, sim.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	g.forwardEvents()
	if !wasOver && g.state.Phase.Terminal() {
		g.finish()
	}
	return nil
}

// forwardEvents feeds new sim events to the HUD feed and the sound board.
func (g *Game) forwardEvents() {
	events, next := g.state.Log.Since(g.logCursor)
	g.logCursor = next
	for _, e := range events {
		switch {
		case e.Category == "fire" && e.Key == "spawn":
			g.sound.play(soundShot)
		case e.Category == "combat" && e.Key == "kill":
			g.sound.play(soundKill)
		}
		if msg, ok := feedMessage(e); ok {
			g.feed.Add(e.Frame, msg)
		}
	}
}

// finish runs once, on the frame the game is decided.
func (g *Game) finish() {
	sm := sim.Summarize(g.state)
	if sm.Outcome == sim.PhaseWon {
		g.sound.play(soundWin)
	} else {
		g.sound.play(soundLose)
	}
	log.Printf("[Game] %s", sm)

	if g.records == nil {
		return
	}
	if g.records.Add(sm) {
		g.feed.Add(g.state.Frame, "new fastest win")
	}
	if err := g.records.Save(); err != nil {
		log.Printf("[Records] Warning: %v", err)
	}
}

func (g *Game) recordLine() string {
	if g.records == nil {
		return ""
	}
	return g.records.Record().String()
}

// endMessage is the centred text for a terminal phase.
func endMessage(p sim.Phase) string {
	switch p {
	case sim.PhaseWon:
		return "You Win!"
	case sim.PhaseLost:
		return "You lose"
	default:
		return ""
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.state.Phase.Terminal() {
		g.drawEndMessage(screen)
		return
	}

	screen.Fill(color.Black)
	g.drawSprite(screen, g.sprites.survivor, g.state.Survivor.Rect)
	for _, z := range g.state.Zombies {
		g.drawSprite(screen, g.sprites.zombie, z.Rect)
	}
	for _, b := range g.state.Bullets {
		g.drawSprite(screen, g.sprites.projectile, b.Rect)
	}

	if g.showHUD {
		g.drawHUD(screen)
		g.feed.Draw(screen, g.cfg.Window.Width)
	}
}

// drawSprite scales img to fill r.
func (g *Game) drawSprite(screen, img *ebiten.Image, r sim.Rect) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(w), float64(r.H)/float64(h))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	screen.DrawImage(img, op)
}

// drawEndMessage draws the result over whatever the screen already holds.
func (g *Game) drawEndMessage(screen *ebiten.Image) {
	msg := endMessage(g.state.Phase)
	tw, th := text.Measure(msg, g.face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(g.cfg.Window.Width)/2-tw/2, float64(g.cfg.Window.Height)/2-th/2)
	opts.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, g.face, opts)
}

// drawHUD renders the live scoreboard in the top-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.state
	lines := []string{
		fmt.Sprintf("zombies %d  kills %d  shots %d", len(st.Zombies), st.Kills, st.Shots),
		fmt.Sprintf("frame %d  gun %s", st.Frame, gunLabel(st.Cooldown)),
	}
	if rec := g.recordLine(); rec != "" {
		lines = append(lines, rec)
	}
	lines = append(lines, "[H] HUD  [C] copy result  [Esc] quit")

	const lineH = 14
	const charW = 6
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + 12)
	boxH := float32(len(lines)*lineH + 8)
	vector.FillRect(screen, 8, 8, boxW, boxH, color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, 8, 8, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 14, 12+i*lineH)
	}
}

func gunLabel(cooldown int) string {
	if cooldown == 0 {
		return "ready"
	}
	return fmt.Sprintf("cooling %d", cooldown)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
