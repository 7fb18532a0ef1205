package tui

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// scriptedGame ends or restarts when told to.
type scriptedGame struct {
	state  core.GameState
	won    bool
	sounds []core.Sound
	resets int
	frames []core.InputFrame // copies of every frame passed to Step
	last   core.InputFrame
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) Won() bool                { return g.won }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.Clear(); dst.DrawText(0, 0, "board") }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	// The model reuses its frame map, so keep a copy.
	g.last = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.last.Set(a)
		}
	}
	g.frames = append(g.frames, g.last)
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.state = core.GameState{}
	}
	res := core.StepResult{State: g.state, Sounds: g.sounds}
	g.sounds = nil
	return res
}

// recordingSink remembers what the model sent to it.
type recordingSink struct {
	played []core.Sound
	muted  bool
	siren  []bool
}

func (s *recordingSink) PlayAll(sounds []core.Sound) { s.played = append(s.played, sounds...) }
func (s *recordingSink) ToggleMute() bool            { s.muted = !s.muted; return s.muted }
func (s *recordingSink) SetSiren(on bool)            { s.siren = append(s.siren, on) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("Expected the tick loop to continue")
	}
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelForwardsInputAndSounds(t *testing.T) {
	game := &scriptedGame{}
	sink := &recordingSink{}
	m := NewModel(game, testConfig(), Options{Sound: sink}).Start()

	if game.resets != 1 {
		t.Fatalf("Expected Start to reset the game once, got %d", game.resets)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	game.sounds = []core.Sound{core.SoundPellet}
	m = tick(t, m)

	if !game.last.Has(core.ActionLeft) {
		t.Error("Expected left to reach the game")
	}
	if !slices.Equal(sink.played, []core.Sound{core.SoundPellet}) {
		t.Errorf("Expected pellet sound played, got %v", sink.played)
	}
	if !slices.Equal(sink.siren, []bool{true}) {
		t.Errorf("Expected siren started once, got %v", sink.siren)
	}

	// Input is per frame.
	m = tick(t, m)
	if len(game.frames) != 2 {
		t.Fatalf("Expected 2 frames stepped, got %d", len(game.frames))
	}
	if !game.frames[0].Has(core.ActionLeft) {
		t.Error("Expected the first frame to keep left")
	}
	if game.frames[1].Has(core.ActionLeft) {
		t.Error("Input frame not cleared after a tick")
	}
}

func TestModelMute(t *testing.T) {
	game := &scriptedGame{}
	sink := &recordingSink{}
	m := NewModel(game, testConfig(), Options{Sound: sink}).Start()

	m, _ = press(m, runeKey('m'))
	if !sink.muted || !m.muted {
		t.Fatal("Expected mute toggled")
	}
	if !strings.Contains(m.View(), "[muted]") {
		t.Error("Expected mute indicator")
	}

	m = tick(t, m)
	if game.last.Has(core.ActionMute) {
		t.Error("Mute should not reach the game")
	}

	m, _ = press(m, runeKey('m'))
	if sink.muted || m.muted {
		t.Error("Expected unmuted")
	}
}

func TestModelQuit(t *testing.T) {
	sink := &recordingSink{}
	m := NewModel(&scriptedGame{}, testConfig(), Options{Sound: sink}).Start()
	m = tick(t, m)

	m, cmd := press(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
	if sink.siren[len(sink.siren)-1] {
		t.Error("Expected siren stopped on quit")
	}
}

func TestModelSavesScoreOncePerGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := NewModel(game, testConfig(), Options{Store: store, Player: "alice"}).Start()

	game.state = core.GameState{Score: 420, GameOver: true}
	game.won = true
	m = tick(t, m)
	m = tick(t, m)

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 1 {
		t.Fatalf("Expected one saved score, got %d", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != 420 || !scores[0].Won {
		t.Errorf("Unexpected saved entry %+v", scores[0])
	}

	// Restart and finish a second game.
	m, _ = press(m, runeKey('r'))
	m = tick(t, m)
	if m.gameState.GameOver {
		t.Fatal("Expected restart")
	}
	game.state = core.GameState{Score: 90, GameOver: true}
	game.won = false
	tick(t, m)

	scores, _ = store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("Expected two saved scores, got %d", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := NewModel(game, testConfig(), Options{Store: store, Player: "bob"}).Start()
	game.state = core.GameState{GameOver: true}
	tick(t, m)

	if scores, _ := store.TopScores("scripted", 10); len(scores) != 0 {
		t.Errorf("Expected no saved score, got %d", len(scores))
	}
}

func TestModelResize(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, testConfig(), Options{}).Start()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("Screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
	if game.resets != 1 {
		t.Error("Resize should not restart the game")
	}
}

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.DrawTextColor(0, 0, "ab", core.ColorBlue)
	scr.DrawText(2, 0, "cd")
	scr.DrawTextColor(0, 1, "ef", core.ColorBrightYellow)

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q", want)
		}
	}
}
