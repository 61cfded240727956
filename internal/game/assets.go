package game

import (
	"bytes"
	"fmt"
	_ "image/png" // sprite files are PNG
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/teh-zombeez/internal/config"
)

// messageFontSize is the end-of-game text size in pixels.
const messageFontSize = 48

type sprites struct {
	survivor   *ebiten.Image
	zombie     *ebiten.Image
	projectile *ebiten.Image
}

// loadSprites reads the three sprite images. Every one is required.
func loadSprites(a config.AssetConfig) (*sprites, error) {
	load := func(name string) (*ebiten.Image, error) {
		path := filepath.Join(a.Dir, name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load sprite %s: %w", path, err)
		}
		return img, nil
	}

	var s sprites
	var err error
	if s.survivor, err = load(a.Survivor); err != nil {
		return nil, err
	}
	if s.zombie, err = load(a.Zombie); err != nil {
		return nil, err
	}
	if s.projectile, err = load(a.Projectile); err != nil {
		return nil, err
	}
	return &s, nil
}

// newMessageFace builds the end-screen font from the bundled Go font.
func newMessageFace() (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      messageFontSize,
		Direction: text.DirectionLeftToRight,
	}, nil
}
