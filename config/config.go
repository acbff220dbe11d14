package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/chaos-pong/constants"
)

// Config holds the launch-time settings the simulation does not own:
// canvas geometry, controller assignment and presentation toggles. Chaos
// parameter ranges live in constants; randomness is gameplay, not config.
type Config struct {
	CanvasWidth  float64 `toml:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height"`

	MaxBalls    int `toml:"max_balls"`
	TrailLength int `toml:"trail_length"`

	// LeftAI and RightAI select AI control per paddle; default is a human
	// left paddle against an AI right paddle
	LeftAI  bool `toml:"left_ai"`
	RightAI bool `toml:"right_ai"`

	Muted bool `toml:"muted"`
}

// Default returns the fully-populated default configuration
func Default() Config {
	return Config{
		CanvasWidth:  constants.DefaultCanvasWidth,
		CanvasHeight: constants.DefaultCanvasHeight,
		MaxBalls:     constants.MaxBalls,
		TrailLength:  constants.TrailLength,
		RightAI:      true,
	}
}

// Load overlays a TOML file onto the defaults. A missing path returns the
// defaults without error; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
