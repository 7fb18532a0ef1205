package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{95*time.Second + 600*time.Millisecond, "1:36"},
		{12 * time.Minute, "12:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{GameID: "pacman", Player: "alice", Score: 2840, Won: true},
		{GameID: "pacman", Player: "bob", Score: 1200},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "pacman", "Pac-Man", 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES - Pac-Man", "alice", "2840", "won", "2 games  1 won  best 2840"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "pacman", "Pac-Man", 100, 30)
	view := m.View()

	if !strings.Contains(view, "No scores recorded yet") || !strings.Contains(view, "no games played") {
		t.Errorf("Unexpected empty view:\n%s", view)
	}
}
