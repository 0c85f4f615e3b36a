// Package config loads rpgkit application settings from TOML.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"rpgkit/internal/logger"
)

// Config is the full application configuration for an rpgkit game.
type Config struct {
	Window WindowConfig  `toml:"window"`
	Scene  SceneConfig   `toml:"scene"`
	Log    logger.Config `toml:"log"`
	Paths  PathsConfig   `toml:"paths"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// SceneConfig describes scene behavior: which layer carries actors and how
// instances under the cursor are outlined.
type SceneConfig struct {
	ActorLayer    string        `toml:"actor_layer"`
	Outline       OutlineConfig `toml:"outline"`
	OutlineIgnore []string      `toml:"outline_ignore"`
}

// OutlineConfig is the outline drawing data: color, line width and the
// alpha threshold for silhouette edges.
type OutlineConfig struct {
	R         uint8 `toml:"r"`
	G         uint8 `toml:"g"`
	B         uint8 `toml:"b"`
	Width     int   `toml:"width"`
	Threshold int   `toml:"threshold"`
}

// PathsConfig points at the declarative data files.
type PathsConfig struct {
	Entities string `toml:"entities"`
	Scripts  string `toml:"scripts"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "rpgkit", Width: 1024, Height: 768},
		Scene: SceneConfig{
			ActorLayer: "actors",
			Outline:    OutlineConfig{R: 255, G: 255, B: 255, Width: 1, Threshold: 16},
		},
		Log:   logger.DefaultConfig(),
		Paths: PathsConfig{Entities: "data/entities.yaml"},
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}
