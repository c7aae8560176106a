package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Run{
		{Player: "ann", Score: 12, Duration: 12 * time.Second},
		{Player: "bob", Score: 40, Duration: 40 * time.Second},
		{Player: "ann", Score: 25, Duration: 25 * time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T, want ScoreboardModel", next)
	}
	return sm
}

func scores(runs []storage.Run) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Score
	}
	return out
}

func TestScoreboardViews(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "ann", 100, 30)

	if m.CurrentView() != ViewTop {
		t.Fatalf("Expected Top view first, got %v", m.CurrentView())
	}
	if got := scores(m.Runs()); len(got) != 3 || got[0] != 40 || got[1] != 25 || got[2] != 12 {
		t.Errorf("Top runs = %v, want [40 25 12]", got)
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.CurrentView() != ViewRecent {
		t.Fatalf("Expected Recent view after tab, got %v", m.CurrentView())
	}
	if got := scores(m.Runs()); len(got) != 3 || got[0] != 25 {
		t.Errorf("Recent runs = %v, want newest first", got)
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.CurrentView() != ViewMine {
		t.Fatalf("Expected Mine view, got %v", m.CurrentView())
	}
	if got := scores(m.Runs()); len(got) != 2 || got[0] != 25 || got[1] != 12 {
		t.Errorf("Mine runs = %v, want [25 12]", got)
	}

	// Wraps around
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.CurrentView() != ViewTop {
		t.Errorf("Expected wrap to Top, got %v", m.CurrentView())
	}
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.CurrentView() != ViewMine {
		t.Errorf("Expected wrap back to Mine, got %v", m.CurrentView())
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "ann", 100, 30)

	out := m.View()
	for _, want := range []string{"SURVIVOR RUNS", "Top", "Recent", "Mine", "bob", "0:40"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in scoreboard view", want)
		}
	}

	// Narrow terminals show tabs instead of the sidebar
	m = updateScoreboard(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.showSidebar {
		t.Error("Expected sidebar to be hidden on narrow terminals")
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("Expected runs in narrow layout")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 100, 30)

	if len(m.Runs()) != 0 {
		t.Errorf("Expected no runs, got %d", len(m.Runs()))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("Expected empty message")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 100, 30)
	back := updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("Expected esc to go back")
	}
	if back.View() != "" {
		t.Error("Expected empty view after leaving")
	}

	quit := updateScoreboard(t, m, runeKey("q"))
	if !quit.IsQuitting() {
		t.Error("Expected q to quit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{75 * time.Second, "1:15"},
		{10*time.Minute + 1400*time.Millisecond, "10:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
