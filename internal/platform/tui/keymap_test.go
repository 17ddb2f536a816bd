package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapKeyCode(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyCode
	}{
		{"a", runeKey("a"), core.KeyLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"d", runeKey("d"), core.KeyRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"q", runeKey("q"), core.KeyQ},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyQ},
		{"unbound", runeKey("x"), core.KeyNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.KeyCode(tt.msg); got != tt.want {
				t.Errorf("KeyCode(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got != 3 {
		t.Errorf("len(ShortHelp()) = %d, expected 3", got)
	}
	if got := len(km.FullHelp()); got != 2 {
		t.Errorf("len(FullHelp()) = %d, expected 2", got)
	}
}

func TestKeyInput(t *testing.T) {
	var in KeyInput
	if got := in.LatestKey(); got != core.KeyNone {
		t.Errorf("LatestKey() = %d, expected %d", got, core.KeyNone)
	}

	in.Feed(core.KeyLeft)
	in.Feed(core.KeyRight)
	if got := in.LatestKey(); got != core.KeyRight {
		t.Errorf("LatestKey() = %d, expected %d", got, core.KeyRight)
	}
	if got := in.LatestKey(); got != core.KeyNone {
		t.Errorf("LatestKey() after consume = %d, expected %d", got, core.KeyNone)
	}
}
