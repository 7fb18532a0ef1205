package pacman

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Layout constants for the terminal board. Each board cell is drawn two
// characters wide so the maze looks square in a terminal.
const (
	cellWidth  = 2
	hudHeight  = 2
	boardW     = BoardSize * cellWidth
	boardH     = BoardSize
	minScreenW = boardW
	minScreenH = boardH + hudHeight + 1
)

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the YAML config file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the engine to the arcade platform. The platform calls Step at
// its fixed tick rate; Game converts that into simulated time for the
// Driver, which runs the player and ghost clocks.
type Game struct {
	driver    *Driver
	src       *RandSource
	rules     Rules
	tickRate  int
	configErr error

	// frames counts Steps since the last (re)start. Elapsed time is derived
	// from it so that rounding of 1/TickRate never accumulates.
	frames  int64
	elapsed time.Duration

	screenW int
	screenH int
}

// New creates a new Pac-Man game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	pcfg, err := config.LoadPacman(configPath)
	g.configErr = err
	g.rules = RulesFromConfig(pcfg)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickRate = tickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.src = NewRandSource(cfg.Seed)
	g.driver = NewDriver(NewState(g.rules), g.src)
	g.frames, g.elapsed = 0, 0
}

// RulesFromConfig converts loaded configuration into game rules.
func RulesFromConfig(c config.PacmanConfig) Rules {
	return Rules{
		PlayerTick:    c.Timing.PlayerTick(),
		GhostTick:     c.Timing.GhostTick(),
		PowerDuration: c.Timing.PowerMode(),
	}.withDefaults()
}

// ConfigError returns the error from loading the config on the last Reset,
// if any. Defaults are in use when it is non-nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	state := g.driver.State()

	if in.Has(core.ActionRestart) && state.GameOver {
		g.driver.Restart(NewState(g.rules))
		g.frames, g.elapsed = 0, 0
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.driver.SetDirection(Up)
	case in.Has(core.ActionDown):
		g.driver.SetDirection(Down)
	case in.Has(core.ActionLeft):
		g.driver.SetDirection(Left)
	case in.Has(core.ActionRight):
		g.driver.SetDirection(Right)
	}

	g.frames++
	now := time.Duration(g.frames) * time.Second / time.Duration(g.tickRate)
	sounds := g.driver.Advance(now - g.elapsed)
	g.elapsed = now
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.driver.State()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.GameOver,
	}
}

// Won reports whether the finished game ended with a cleared board.
func (g *Game) Won() bool {
	return g.driver.State().Won
}

// Snapshot returns the current board snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.driver.State().Snapshot()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.driver.State()

	g.renderHUD(dst, s)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight
	grid := s.Grid()
	for y := range grid {
		for x, kind := range grid[y] {
			first, second, color := glyph(kind, s)
			px := offX + x*cellWidth
			dst.SetCell(px, offY+y, first, color)
			dst.SetCell(px+1, offY+y, second, color)
		}
	}

	dst.DrawTextColor(offX, offY+boardH, "arrows/wasd move  r restart  m mute  q quit", core.ColorGray)

	switch {
	case s.Won:
		renderOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", s.Score))
	case s.GameOver:
		renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, s State) {
	hud := fmt.Sprintf(" Pac-Man  Score: %d  Pellets: %d", s.Score, s.Pellets.Len()+s.PowerPellets.Len())
	dst.DrawText(0, 0, hud)
	if s.PowerMode {
		power := fmt.Sprintf("  POWER %.1fs", s.PowerLeft.Seconds())
		dst.DrawTextColor(len(hud), 0, power, core.ColorBrightBlue)
	}

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// glyph returns the two characters and color used to draw a cell.
func glyph(kind CellKind, s State) (rune, rune, core.Color) {
	switch kind {
	case CellPlayer:
		return playerRune(s.Direction), ' ', core.ColorBrightYellow
	case CellGhost:
		if s.PowerMode {
			return 'M', ' ', core.ColorBrightBlue
		}
		return 'M', ' ', core.ColorBrightRed
	case CellWall:
		return '█', '█', core.ColorBlue
	case CellPellet:
		return '·', ' ', core.ColorYellow
	case CellPowerPellet:
		return '●', ' ', core.ColorBrightYellow
	default:
		return ' ', ' ', core.ColorDefault
	}
}

// playerRune draws the player with its mouth open towards d.
func playerRune(d Direction) rune {
	switch d {
	case Up:
		return 'v'
	case Down:
		return '^'
	case Left:
		return '>'
	default:
		return '<'
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len(line1), len(line2)) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	x := box.X + (box.W-len(text))/2
	dst.DrawText(x, y, text)
}
