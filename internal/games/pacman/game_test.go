package pacman

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pacman.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  player_tick_ms: 150\n  ghost_tick_ms: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 34, TickRate: 60, Seed: 1})
	if err := g.ConfigError(); err != nil {
		t.Fatalf("Config error: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("pacman")
	if err != nil {
		t.Fatalf("pacman not registered: %v", err)
	}
	if g.ID() != "pacman" || g.Title() != "Pac-Man" {
		t.Errorf("Unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestGameFramesToTicks(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()

	// 8 frames at 60 fps is 133ms: no tick yet.
	for i := 0; i < 8; i++ {
		g.Step(in)
	}
	if g.Snapshot().Pacman != pacmanStart {
		t.Fatalf("Pacman moved before the first player tick")
	}

	res := g.Step(in)
	if g.Snapshot().Pacman != (Position{12, 23}) {
		t.Errorf("Expected pacman at (12,23) after 150ms, got %v", g.Snapshot().Pacman)
	}
	if res.State.Score != PelletPoints {
		t.Errorf("Expected score %d, got %d", PelletPoints, res.State.Score)
	}
	if len(res.Sounds) != 1 || res.Sounds[0] != core.SoundPellet {
		t.Errorf("Expected a pellet sound, got %v", res.Sounds)
	}
}

func TestGameDirectionInput(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	in.Clear()
	for i := 0; i < 8; i++ {
		g.Step(in)
	}
	if g.Snapshot().Direction != "right" || g.Snapshot().Pacman != (Position{14, 23}) {
		t.Errorf("Expected pacman moving right at (14,23), got %s %v",
			g.Snapshot().Direction, g.Snapshot().Pacman)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t)

	s := NewState(g.rules)
	s.GameOver = true
	s.Score = 500
	g.driver.Restart(s)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("Expected a fresh game, got %+v", res.State)
	}
}

func TestGameRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	for i := 0; i < 9; i++ {
		g.Step(in)
	}

	in.Set(core.ActionRestart)
	res := g.Step(in)
	if res.State.Score != PelletPoints {
		t.Errorf("Restart during play reset the score to %d", res.State.Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		in.Clear()
		switch i {
		case 30:
			in.Set(core.ActionUp)
		case 200:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Pacman != s2.Pacman || s1.Ghosts != s2.Ghosts || s1.GhostDirs != s2.GhostDirs {
		t.Errorf("Games diverged: %+v vs %+v", s1, s2)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 34)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", scr.Row(0))
	}

	offX := (80 - boardW) / 2
	player := scr.GetCell(offX+13*cellWidth, hudHeight+23)
	if player.Rune != '>' || player.Color != core.ColorBrightYellow {
		t.Errorf("Unexpected player cell %+v", player)
	}
	wall := scr.GetCell(offX, hudHeight)
	if wall.Rune != '█' || wall.Color != core.ColorBlue {
		t.Errorf("Unexpected wall cell %+v", wall)
	}
	ghost := scr.GetCell(offX+11*cellWidth, hudHeight+13)
	if ghost.Color != core.ColorBrightRed {
		t.Errorf("Expected red ghost outside power mode, got %+v", ghost)
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	s := NewState(g.rules)
	s.GameOver = true
	g.driver.Restart(s)

	scr := core.NewScreen(80, 34)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Game Over") {
		t.Error("Expected game over overlay")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(40, 20)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("Expected small window message")
	}
}

func TestRulesFromConfig(t *testing.T) {
	g := newTestGame(t)
	if g.rules != DefaultRules() {
		t.Errorf("Expected default rules, got %+v", g.rules)
	}
}
