package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// SoundSink receives the sound cues of every frame. The audio manager
// implements it; SSH sessions run without one.
type SoundSink interface {
	PlayAll(sounds []core.Sound)
	ToggleMute() bool
	SetSiren(on bool)
}

// winReporter is implemented by games that can end in a win.
type winReporter interface {
	Won() bool
}

// Options holds the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // nil disables score saving
	Sound  SoundSink      // nil plays nothing
	Player string         // name recorded with saved scores
	Muted  bool           // initial mute state of Sound
	Logger *log.Logger    // nil discards warnings
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	muted      bool
	sirenOn    bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		muted:      opts.Muted,
	}
}

// Init starts the frame loop. The game is reset by Start, since Init cannot
// return a changed model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Start resets the game and returns the model ready to run.
func (m Model) Start() Model {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.startedAt = time.Now()
	return m
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.setSiren(false)
		return m, tea.Quit
	}

	switch {
	case m.inputFrame.Has(core.ActionMute):
		m.inputFrame.Clear()
		m.muted = !m.muted
		if m.opts.Sound != nil {
			m.muted = m.opts.Sound.ToggleMute()
		}
	case key.Matches(msg, m.keys.Keys().Screenshot):
		m.saveScreenshot()
	}

	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.startedAt = time.Now()
	}

	if m.opts.Sound != nil {
		m.opts.Sound.PlayAll(result.Sounds)
	}
	m.setSiren(!m.gameState.GameOver)

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// setSiren forwards siren changes to the sound sink.
func (m *Model) setSiren(on bool) {
	if m.opts.Sound == nil || m.sirenOn == on {
		return
	}
	m.sirenOn = on
	m.opts.Sound.SetSiren(on)
}

// saveScore records the finished game. Failures only produce a warning.
func (m *Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}

	won := false
	if w, ok := m.game.(winReporter); ok {
		won = w.Won()
	}

	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    m.gameState.Score,
		Won:      won,
		Duration: time.Since(m.startedAt),
	})
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("score not saved", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.muted {
		m.screen.DrawTextColor(m.screen.Width()-8, 0, "[muted]", core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts).Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
