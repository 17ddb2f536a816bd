package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

func TestRenderSurfaceShape(t *testing.T) {
	s := core.NewSurface(64, 40, 1)
	s.FillAll(core.RGBA(30, 35, 30, 0))
	s.FillRect(core.RectCorners(core.Pt(10, 10), core.Pt(40, 30)), core.RGBA(255, 255, 255, 0), 0)

	tests := []struct {
		cols, rows int
	}{
		{16, 5},
		{64, 20},
		{100, 30}, // upsampled
		{1, 1},
	}

	for _, tt := range tests {
		out := RenderSurface(s, tt.cols, tt.rows, nil)
		lines := strings.Split(out, "\n")
		if len(lines) != tt.rows {
			t.Errorf("RenderSurface(%d, %d) lines = %d, expected %d", tt.cols, tt.rows, len(lines), tt.rows)
			continue
		}
		for i, line := range lines {
			if got := strings.Count(line, halfBlock); got != tt.cols {
				t.Errorf("RenderSurface(%d, %d) line %d cells = %d, expected %d", tt.cols, tt.rows, i, got, tt.cols)
			}
		}
	}
}

func TestRenderSurfaceEmpty(t *testing.T) {
	s := core.NewSurface(8, 8, 1)
	if got := RenderSurface(s, 0, 10, nil); got != "" {
		t.Errorf("RenderSurface() with zero columns = %q, expected empty", got)
	}
}

func TestRGBHex(t *testing.T) {
	if got := rgbHex(core.RGBA(0x1e, 0x23, 0x1e, 0x80)); got != "#1e231e" {
		t.Errorf("rgbHex() = %q, expected %q", got, "#1e231e")
	}
}
