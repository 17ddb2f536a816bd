package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

const halfBlock = "▀"

type cellColors struct {
	top, bottom core.Color
}

// RenderSurface downsamples the surface into cols x rows terminal cells. Each cell
// is an upper half block whose foreground is the upper pixel sample and whose
// background is the lower one. Adjacent cells with the same colors are grouped to
// minimize ANSI escape sequences. A nil renderer uses the default one.
func RenderSurface(s *core.Surface, cols, rows int, r *lipgloss.Renderer) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	w, h := s.Width(), s.Height()
	xs := make([]int, cols)
	for cx := range cols {
		xs[cx] = cx * w / cols
	}

	var sb strings.Builder
	sb.Grow(cols*rows*len(halfBlock) + rows)
	styles := make(map[cellColors]lipgloss.Style)

	for cy := range rows {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		yTop := (2 * cy) * h / (2 * rows)
		yBottom := (2*cy + 1) * h / (2 * rows)

		cx := 0
		for cx < cols {
			start := cellColors{s.At(xs[cx], yTop), s.At(xs[cx], yBottom)}
			n := 0
			for cx < cols && (cellColors{s.At(xs[cx], yTop), s.At(xs[cx], yBottom)}) == start {
				n++
				cx++
			}

			style, ok := styles[start]
			if !ok {
				style = r.NewStyle().
					Foreground(lipgloss.Color(rgbHex(start.top))).
					Background(lipgloss.Color(rgbHex(start.bottom)))
				styles[start] = style
			}
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// rgbHex formats the color for lipgloss, which has no alpha.
func rgbHex(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
