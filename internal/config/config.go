// Package config provides YAML-based configuration for the game: resolution, block
// grid, ball and paddle constants, render settings and colors.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

// Config contains every named constant the game is built from.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Grid   GridConfig   `yaml:"grid"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Render RenderConfig `yaml:"render"`
	Colors ColorConfig  `yaml:"colors"`
}

// ScreenConfig defines the pixel surface size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the block grid and which rows start filled.
type GridConfig struct {
	Rows          int `yaml:"rows"`
	Cols          int `yaml:"cols"`
	BlockRowStart int `yaml:"block_row_start"` // inclusive
	BlockRowEnd   int `yaml:"block_row_end"`   // inclusive
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`
	InitialSpeedY float64 `yaml:"initial_speed_y"` // pixels per second
	StartOffsetY  float64 `yaml:"start_offset_y"`  // center distance from the bottom edge
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width  int     `yaml:"width"`  // vertical thickness
	Length int     `yaml:"length"` // horizontal extent
	Margin int     `yaml:"margin"` // top edge distance from the bottom edge
	Accel  float64 `yaml:"accel"`  // speed change per key poll
}

// RenderConfig defines rasterization and frame pacing.
type RenderConfig struct {
	NoiseAmplitude int           `yaml:"noise_amplitude"`
	FrameDelay     time.Duration `yaml:"frame_delay"`
	Seed           uint64        `yaml:"seed"`
}

// ColorConfig defines the flat colors. Block colors are randomized per block.
type ColorConfig struct {
	Background Color `yaml:"background"`
	Paddle     Color `yaml:"paddle"`
	Ball       Color `yaml:"ball"`
}

// Color is a core.Color that reads and writes as a "#RRGGBB[AA]" YAML string.
type Color core.Color

// Core returns the color as a core.Color.
func (c Color) Core() core.Color {
	return core.Color(c)
}

// UnmarshalYAML parses a hex color string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: color must be a string: %w", err)
	}
	parsed, err := core.ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("config: line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}

// MarshalYAML writes the color as a hex string.
func (c Color) MarshalYAML() (any, error) {
	return core.Color(c).Hex(), nil
}

// Validate reports every constant that cannot produce a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid %dx%d must be positive", c.Grid.Rows, c.Grid.Cols))
	}
	if c.Grid.BlockRowStart < 0 || c.Grid.BlockRowEnd >= c.Grid.Rows || c.Grid.BlockRowStart > c.Grid.BlockRowEnd {
		errs = append(errs, fmt.Errorf("block rows %d..%d must lie within %d grid rows",
			c.Grid.BlockRowStart, c.Grid.BlockRowEnd, c.Grid.Rows))
	}
	if c.Ball.Radius < 1 {
		errs = append(errs, fmt.Errorf("ball radius %v must be at least 1", c.Ball.Radius))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Length <= 0 {
		errs = append(errs, fmt.Errorf("paddle %dx%d must be positive", c.Paddle.Length, c.Paddle.Width))
	}
	if c.Paddle.Margin <= 0 || c.Paddle.Margin > c.Screen.Height {
		errs = append(errs, fmt.Errorf("paddle margin %d must lie within 1..%d", c.Paddle.Margin, c.Screen.Height))
	}
	if c.Paddle.Accel < 0 {
		errs = append(errs, fmt.Errorf("paddle accel %v must not be negative", c.Paddle.Accel))
	}
	if c.Ball.StartOffsetY < 0 || c.Ball.StartOffsetY >= float64(c.Screen.Height) {
		errs = append(errs, fmt.Errorf("ball start offset %v must lie within 0..%d", c.Ball.StartOffsetY, c.Screen.Height))
	}
	if c.Render.NoiseAmplitude < 0 {
		errs = append(errs, fmt.Errorf("noise amplitude %d must not be negative", c.Render.NoiseAmplitude))
	}
	if c.Render.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("frame delay %v must not be negative", c.Render.FrameDelay))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
