package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a flat RGBA color. Alpha is stored but never composited.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when alpha is non-zero.
func (c Color) Hex() string {
	if c.A == 0 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("core: invalid color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v <<= 8
	}
	return Color{
		R: uint8(v >> 24), //#nosec G115 -- masked by shift
		G: uint8(v >> 16), //#nosec G115 -- masked by shift
		B: uint8(v >> 8),  //#nosec G115 -- masked by shift
		A: uint8(v),       //#nosec G115 -- masked by shift
	}, nil
}

// offsetChannel adds a signed offset to a channel, clamping to [0, 255].
func offsetChannel(v uint8, delta int) uint8 {
	return uint8(Clamp(int(v)+delta, 0, 255)) //#nosec G115 -- clamped to byte range
}
