package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Outcome: "lost", Destroyed: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	in := []Run{
		{Player: "alice", Display: "fbdev", Outcome: "lost", Destroyed: 4, Frames: 300, Elapsed: 3.5, Seed: 7},
		{Player: "bob", Display: "tui", Outcome: "quit", Destroyed: 0, Frames: 12, Elapsed: 0.2, Seed: 1 << 63},
		{Player: "alice", Display: "headless", Outcome: "lost", Destroyed: 9, Frames: 800, Elapsed: 8.1, Seed: 9},
	}
	for _, r := range in {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Display != "headless" || runs[1].Display != "tui" {
		t.Errorf("RecentRuns() order = %s, %s, expected headless, tui", runs[0].Display, runs[1].Display)
	}
	if runs[1].Seed != 1<<63 {
		t.Errorf("Seed = %d, expected %d", runs[1].Seed, uint64(1<<63))
	}
	if runs[0].Elapsed != 8.1 || runs[0].Frames != 800 || runs[0].Player != "alice" {
		t.Errorf("RecentRuns()[0] = %+v, fields not preserved", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestStoreRecentRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for range 25 {
		if _, err := store.SaveRun(Run{Outcome: "lost"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run on empty store, got %+v", best)
	}

	for _, r := range []Run{
		{Outcome: "lost", Destroyed: 5, Elapsed: 10},
		{Outcome: "lost", Destroyed: 12, Elapsed: 30, Player: "slow"},
		{Outcome: "lost", Destroyed: 12, Elapsed: 20, Player: "fast"},
		{Outcome: "quit", Destroyed: 1, Elapsed: 1},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err = store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Player != "fast" {
		t.Errorf("BestRun() = %+v, expected player fast", best)
	}
}

func TestStoreSummarize(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("Summarize() on empty store = %+v", sum)
	}

	for _, r := range []Run{
		{Outcome: "lost", Destroyed: 5},
		{Outcome: "lost", Destroyed: 7},
		{Outcome: "won", Destroyed: 150},
		{Outcome: "quit", Destroyed: 0},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sum, err = store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 4 || sum.Lost != 2 || sum.Won != 1 || sum.Quit != 1 {
		t.Errorf("Summarize() counts = %+v", sum)
	}
	if sum.BestDestroyed != 150 {
		t.Errorf("BestDestroyed = %d, expected 150", sum.BestDestroyed)
	}
	if sum.TotalDestroyed != 162 {
		t.Errorf("TotalDestroyed = %d, expected 162", sum.TotalDestroyed)
	}
	if sum.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Outcome: "lost"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
