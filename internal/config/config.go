// Package config loads game tuning from YAML, falling back to the classic
// defaults for anything the file leaves out.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/teh-zombeez/internal/sim"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "ZOMBEEZ_CONFIG"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk game configuration.
//
// Example:
//
//	window:
//	  width: 1280
//	  height: 800
//	zombies:
//	  count: 8
//	  max_speed: 5
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Zombies  ZombieConfig   `yaml:"zombies"`
	Survivor SurvivorConfig `yaml:"survivor"`
	Gun      GunConfig      `yaml:"gun"`
	Assets   AssetConfig    `yaml:"assets"`

	// TPS is the fixed simulation and render rate.
	TPS int `yaml:"tps"`
	// Seed fixes zombie placement; 0 picks one from the clock.
	Seed int64 `yaml:"seed"`
	// MoveAfterWin keeps survivor movement alive on the win screen.
	MoveAfterWin bool `yaml:"move_after_win"`
	// Audio enables the synthesized sound effects.
	Audio bool `yaml:"audio"`
}

// WindowConfig is the playfield and window setup.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// ZombieConfig controls the horde.
type ZombieConfig struct {
	Count    int `yaml:"count"`
	MaxSpeed int `yaml:"max_speed"`
	Margin   int `yaml:"spawn_margin"`
}

// SurvivorConfig controls the player sprite.
type SurvivorConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Speed  int `yaml:"speed"`
}

// GunConfig controls bullets and fire rate.
type GunConfig struct {
	BulletSpeed    int `yaml:"bullet_speed"`
	CooldownFrames int `yaml:"cooldown_frames"`
}

// AssetConfig locates the sprite images.
type AssetConfig struct {
	Dir        string `yaml:"dir"`
	Survivor   string `yaml:"survivor"`
	Zombie     string `yaml:"zombie"`
	Projectile string `yaml:"projectile"`
}

// Default returns the classic game.
func Default() *Config {
	r := sim.DefaultRules()
	return &Config{
		Window: WindowConfig{
			Title:  "Teh Zombeez",
			Width:  r.Width,
			Height: r.Height,
		},
		Zombies: ZombieConfig{
			Count:    r.ZombieCount,
			MaxSpeed: r.ZombieMaxSpeed,
			Margin:   r.SpawnMargin,
		},
		Survivor: SurvivorConfig{
			StartX: r.SurvivorStartX,
			StartY: r.SurvivorStartY,
			Speed:  r.SurvivorSpeed,
		},
		Gun: GunConfig{
			BulletSpeed:    r.BulletSpeed,
			CooldownFrames: r.FireCooldownFrames,
		},
		Assets: AssetConfig{
			Dir:        "images",
			Survivor:   "survivor.png",
			Zombie:     "zombie.png",
			Projectile: "projectile.png",
		},
		TPS:          30,
		MoveAfterWin: r.MoveAfterWin,
		Audio:        true,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve picks the config for this run. An explicit path wins, then the
// ZOMBEEZ_CONFIG variable (a .env file in the working directory is read
// first if there is one), then the defaults.
func Resolve(path string) (*Config, error) {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the config can produce a playable game.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalid, c.TPS)
	case c.Zombies.Count < 0:
		return fmt.Errorf("%w: zombie count %d", ErrInvalid, c.Zombies.Count)
	case c.Zombies.MaxSpeed < 0:
		return fmt.Errorf("%w: zombie max_speed %d", ErrInvalid, c.Zombies.MaxSpeed)
	case 2*c.Zombies.Margin > c.Window.Width || 2*c.Zombies.Margin > c.Window.Height:
		return fmt.Errorf("%w: spawn_margin %d leaves no room in %dx%d",
			ErrInvalid, c.Zombies.Margin, c.Window.Width, c.Window.Height)
	case c.Survivor.StartX < 0 || c.Survivor.StartX > c.Window.Width ||
		c.Survivor.StartY < 0 || c.Survivor.StartY > c.Window.Height:
		return fmt.Errorf("%w: survivor start (%d,%d) outside %dx%d",
			ErrInvalid, c.Survivor.StartX, c.Survivor.StartY, c.Window.Width, c.Window.Height)
	case c.Survivor.Speed <= 0:
		return fmt.Errorf("%w: survivor speed %d", ErrInvalid, c.Survivor.Speed)
	case c.Gun.BulletSpeed <= 0:
		return fmt.Errorf("%w: bullet_speed %d must move bullets right", ErrInvalid, c.Gun.BulletSpeed)
	case c.Gun.CooldownFrames < 0:
		return fmt.Errorf("%w: cooldown_frames %d", ErrInvalid, c.Gun.CooldownFrames)
	}
	return nil
}

// Rules converts the config into simulation rules.
func (c *Config) Rules() sim.Rules {
	return sim.Rules{
		Width:              c.Window.Width,
		Height:             c.Window.Height,
		ZombieCount:        c.Zombies.Count,
		ZombieMaxSpeed:     c.Zombies.MaxSpeed,
		SpawnMargin:        c.Zombies.Margin,
		SurvivorStartX:     c.Survivor.StartX,
		SurvivorStartY:     c.Survivor.StartY,
		SurvivorSpeed:      c.Survivor.Speed,
		BulletSpeed:        c.Gun.BulletSpeed,
		FireCooldownFrames: c.Gun.CooldownFrames,
		MoveAfterWin:       c.MoveAfterWin,
	}
}
