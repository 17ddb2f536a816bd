package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fb-breakout/internal/config"
	"github.com/vovakirdan/fb-breakout/internal/games/breakout"
	"github.com/vovakirdan/fb-breakout/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m := NewModel(Session{Config: config.Default(), Seed: 1, Player: "tester", Store: store}, 80, 24, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned nil command")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelKeyDrivesPaddle(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg{})

	if got := m.Loop().Game().Paddle().SpeedX; got != 25 {
		t.Errorf("paddle SpeedX = %v, expected 25", got)
	}
	if cmd == nil {
		t.Error("tick returned nil command, expected next tick")
	}
	if got := m.Loop().Stats().Frames; got != 1 {
		t.Errorf("Frames = %d, expected 1", got)
	}
}

func TestModelQuitKeySavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey("q"))
	m, cmd := update(t, m, TickMsg{})

	if !isQuit(cmd) {
		t.Fatal("quit key did not quit the program")
	}
	if !m.Loop().Stats().Quit {
		t.Error("Stats().Quit = false, expected true")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved runs = %d, expected 1", len(runs))
	}
	if runs[0].Outcome != "quit" || runs[0].Player != "tester" || runs[0].Display != "tui" {
		t.Errorf("saved run = %+v, expected quit by tester on tui", runs[0])
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !isQuit(cmd) {
		t.Error("ctrl+c did not quit the program")
	}
	if m.View() != "" {
		t.Error("View() after quit is not empty")
	}
}

func TestModelStopsTickingWhenLost(t *testing.T) {
	m := newTestModel(t, nil)

	g := m.Loop().Game()
	snap := g.Snapshot()
	snap.BallY = 1070
	g.ApplySnapshot(snap)

	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("tick after loss returned a command, expected none")
	}
	if got := m.Loop().Game().Outcome(); got != breakout.Lost {
		t.Fatalf("Outcome() = %v, expected %v", got, breakout.Lost)
	}
	if !strings.Contains(m.View(), "LOST") {
		t.Error("View() does not show the outcome")
	}

	// game keys are ignored now, quit leaves
	m, cmd = update(t, m, runeKey("d"))
	if cmd != nil {
		t.Error("game key after loss returned a command")
	}
	_, cmd = update(t, m, runeKey("q"))
	if !isQuit(cmd) {
		t.Error("q after loss did not quit")
	}
}

func TestModelViewSize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Errorf("View() lines = %d, expected 12", len(lines))
	}
	if got := strings.Count(lines[0], halfBlock); got != 40 {
		t.Errorf("first line cells = %d, expected 40", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 2})
	if got := m.View(); got != "terminal too small" {
		t.Errorf("View() = %q, expected %q", got, "terminal too small")
	}
}
