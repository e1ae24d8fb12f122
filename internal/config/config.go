// Package config loads the optional gameplay tuning file. The game ships
// with sensible defaults; a haunt.yaml next to the binary (or wherever
// HAUNT_CONFIG points) overrides them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultFile = "haunt.yaml"

// Config holds every tunable the game reads at startup.
type Config struct {
	CandiesPerLevel int `yaml:"candies_per_level"`
	TotalLevels     int `yaml:"total_levels"`
	NightModeDelay  int `yaml:"night_mode_delay"`

	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`

	WindowScale int  `yaml:"window_scale"`
	Fullscreen  bool `yaml:"fullscreen"`

	Debug           bool `yaml:"debug"`
	UnlimitedHealth bool `yaml:"unlimited_health"`
}

// Default returns the shipped tuning.
func Default() Config {
	return Config{
		CandiesPerLevel: 15,
		TotalLevels:     5,
		NightModeDelay:  10800,
		MusicVolume:     0.7,
		SFXVolume:       0.8,
		WindowScale:     1,
	}
}

// Load reads the tuning file and overlays it on the defaults. A missing file
// is not an error; a malformed one is.
func Load() (Config, error) {
	path := defaultFile
	if env := os.Getenv("HAUNT_CONFIG"); env != "" {
		path = env
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.sanitized(), nil
}

// sanitized clamps user-edited values back into playable ranges.
func (c Config) sanitized() Config {
	if c.CandiesPerLevel < 1 {
		c.CandiesPerLevel = 1
	}
	if c.TotalLevels < 1 {
		c.TotalLevels = 1
	}
	if c.NightModeDelay < 0 {
		c.NightModeDelay = 0
	}
	c.MusicVolume = clampVolume(c.MusicVolume)
	c.SFXVolume = clampVolume(c.SFXVolume)
	if c.WindowScale < 1 {
		c.WindowScale = 1
	}
	return c
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
