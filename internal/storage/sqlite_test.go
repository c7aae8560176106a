package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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
	if _, err := store.SaveRun(Run{Player: "ann", Score: 12}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12 after reopen, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	in := Run{
		Player:         "ann",
		Score:          42,
		Duration:       42*time.Second + 250*time.Millisecond,
		EnemiesSpawned: 11,
		EnemiesDodged:  10,
		MinDifficulty:  0.9,
	}
	saved, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("Expected a database ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Player != in.Player || got.Score != in.Score || got.Duration != in.Duration ||
		got.EnemiesSpawned != in.EnemiesSpawned || got.EnemiesDodged != in.EnemiesDodged ||
		got.MinDifficulty != in.MinDifficulty {
		t.Errorf("Round trip mismatch: saved %+v, got %+v", in, *got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", *missing)
	}
}

func TestStoreSaveRunIDs(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	saved, err := store.SaveRun(Run{RunID: id, Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.RunID != id {
		t.Errorf("Expected RunID %s to be kept, got %s", id, saved.RunID)
	}

	if _, err := store.SaveRun(Run{RunID: id, Score: 2}); err == nil {
		t.Error("Expected duplicate RunID to be rejected")
	}
	if _, err := store.SaveRun(Run{RunID: "not-a-uuid"}); err == nil {
		t.Error("Expected malformed RunID to be rejected")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{100, 50, 200, 500, 300} {
		player := "ann"
		if i%2 == 1 {
			player = "bob"
		}
		if _, err := store.SaveRun(Run{Player: player, Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 300 || runs[2].Score != 200 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 runs, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{7, 3, 9} {
		if _, err := store.SaveRun(Run{Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to insertion order.
	if runs[0].Score != 9 || runs[2].Score != 7 {
		t.Errorf("Expected newest first, got %v", runs)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "ann", Score: 10})
	store.SaveRun(Run{Player: "bob", Score: 99})
	store.SaveRun(Run{Player: "ann", Score: 30})

	runs, err := store.PlayerRuns("ann", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ann, got %d", len(runs))
	}
	if runs[0].Score != 30 {
		t.Errorf("Expected best run first, got %d", runs[0].Score)
	}
	for _, r := range runs {
		if r.Player != "ann" {
			t.Errorf("Unexpected player %q", r.Player)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun(Run{Player: "ann", Score: 100})
	store.SaveRun(Run{Player: "bob", Score: 300})
	store.SaveRun(Run{Player: "ann", Score: 200})

	tests := []struct {
		player string
		want   int
	}{
		{"", 300},
		{"ann", 200},
		{"bob", 300},
		{"carol", 0},
	}
	for _, tt := range tests {
		got, err := store.HighScore(tt.player)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.player, err)
		}
		if got != tt.want {
			t.Errorf("HighScore(%q) = %d, want %d", tt.player, got, tt.want)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", *empty)
	}

	store.SaveRun(Run{Player: "ann", Score: 10, Duration: 10 * time.Second, EnemiesDodged: 3})
	store.SaveRun(Run{Player: "ann", Score: 20, Duration: 20 * time.Second, EnemiesDodged: 6})
	store.SaveRun(Run{Player: "bob", Score: 60, Duration: time.Minute, EnemiesDodged: 20})

	stats, err := store.Stats("ann")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 20 {
		t.Errorf("Expected high score 20, got %d", stats.HighScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("Expected average 15, got %f", stats.AvgScore)
	}
	if stats.TotalTime != 30*time.Second {
		t.Errorf("Expected 30s total, got %v", stats.TotalTime)
	}
	if stats.TotalDodged != 9 {
		t.Errorf("Expected 9 dodged, got %d", stats.TotalDodged)
	}

	all, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if all.Runs != 3 || all.HighScore != 60 {
		t.Errorf("Unexpected totals: %+v", *all)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "ann", Score: 100})
	store.SaveRun(Run{Player: "ann", Score: 200})
	store.SaveRun(Run{Player: "bob", Score: 300})

	n, err := store.ClearRuns("ann")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 deleted runs, got %d", n)
	}

	if runs, _ := store.PlayerRuns("ann", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs for ann after clear, got %d", len(runs))
	}
	if runs, _ := store.PlayerRuns("bob", 10); len(runs) != 1 {
		t.Errorf("bob's runs should not be affected by clearing ann")
	}

	n, err = store.ClearRuns("")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 deleted run, got %d", n)
	}
}
