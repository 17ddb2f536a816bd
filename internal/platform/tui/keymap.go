package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

// KeyMap defines the key bindings of the preview.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Quit},
	}
}

// KeyCode translates a key message into the device key code the game
// understands, or core.KeyNone.
func (k KeyMap) KeyCode(msg tea.KeyMsg) core.KeyCode {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Quit):
		return core.KeyQ
	}
	return core.KeyNone
}

// KeyInput is the loop's input collaborator in the terminal. Key messages are
// fed in from Update and consumed by the next frame.
type KeyInput struct {
	pending core.KeyCode
}

// Feed records a key; a later key replaces an unconsumed one.
func (in *KeyInput) Feed(code core.KeyCode) {
	in.pending = code
}

// LatestKey returns the pending key and clears it.
func (in *KeyInput) LatestKey() core.KeyCode {
	code := in.pending
	in.pending = core.KeyNone
	return code
}
