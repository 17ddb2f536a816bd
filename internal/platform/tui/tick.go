// Package tui previews the game in a terminal through Bubble Tea. The pixel
// surface is downsampled into half-block cells, and key messages become the
// loop's input. It also serves the preview over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after the frame delay.
func tickCmd(frameDelay time.Duration) tea.Cmd {
	if frameDelay <= 0 {
		frameDelay = time.Second / 60
	}
	return tea.Tick(frameDelay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
