package main

import (
	"flag"
	"log"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/teh-zombeez/internal/config"
	"github.com/Garsondee/teh-zombeez/internal/game"
	"github.com/Garsondee/teh-zombeez/internal/records"
)

func main() {
	var cfgPath string
	var seed int64
	flag.StringVar(&cfgPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	flag.Int64Var(&seed, "seed", 0, "zombie placement seed (0 = random)")
	flag.Parse()

	cfg, err := config.Resolve(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	store, err := records.Open("teh_zombeez")
	if err != nil {
		log.Printf("[Records] Warning: %v (record kept in memory)", err)
	}

	g, err := game.New(cfg, store)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
