package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the hardcoded reference configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1920,
			Height: 1080,
		},
		Grid: GridConfig{
			Rows:          20,
			Cols:          30,
			BlockRowStart: 6,
			BlockRowEnd:   10,
		},
		Ball: BallConfig{
			Radius:        30,
			InitialSpeedY: 500,
			StartOffsetY:  200,
		},
		Paddle: PaddleConfig{
			Width:  25,
			Length: 400,
			Margin: 30,
			Accel:  25,
		},
		Render: RenderConfig{
			NoiseAmplitude: 40,
			FrameDelay:     10 * time.Millisecond,
			Seed:           0, // 0 means use current time at startup
		},
		Colors: ColorConfig{
			Background: Color(core.RGBA(30, 35, 30, 0)),
			Paddle:     Color(core.RGBA(255, 255, 255, 0)),
			Ball:       Color(core.RGBA(230, 230, 255, 0)),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
