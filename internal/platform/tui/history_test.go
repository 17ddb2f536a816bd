package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fb-breakout/internal/storage"
)

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("View() does not show the empty message")
	}
}

func TestHistoryModelLoadsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{Player: "alice", Display: "fbdev", Outcome: "lost", Destroyed: 4, Elapsed: 12.5},
		{Player: "", Display: "tui", Outcome: "quit", Destroyed: 1, Elapsed: 2},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewHistoryModel(store, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("loaded runs = %d, expected 2", len(m.runs))
	}
	if line := SummaryLine(m.summary); !strings.Contains(line, "2 runs") {
		t.Errorf("SummaryLine() = %q, expected it to mention 2 runs", line)
	}

	rows := historyRows(m.runs)
	if rows[0][1] != "-" || rows[0][3] != "quit" {
		t.Errorf("first row = %v, expected anonymous quit run", rows[0])
	}
	if rows[1][4] != "4" || rows[1][5] != "12.5s" {
		t.Errorf("second row = %v, expected 4 blocks in 12.5s", rows[1])
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	_, cmd := m.Update(runeKey("q"))
	if !isQuit(cmd) {
		t.Error("q did not quit the history screen")
	}
}

func TestSummaryLineEmpty(t *testing.T) {
	if got := SummaryLine(nil); got != "" {
		t.Errorf("SummaryLine(nil) = %q, expected empty", got)
	}
	if got := SummaryLine(&storage.Summary{}); got != "" {
		t.Errorf("SummaryLine(empty) = %q, expected empty", got)
	}
}

var _ tea.Model = HistoryModel{}
