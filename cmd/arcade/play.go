package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/denisbrodbeck/machineid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagPlayer  string
	flagNoSound bool
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [game]",
		Short: "Play a game",
		Long: `Start playing the specified game (default: pacman).

Controls:
  Arrows/WASD/HJKL - Move
  R                - Restart (after game over)
  M                - Mute
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  arcade play
  arcade play --seed 42
  arcade play --config ./my-pacman.yaml
  arcade play --player alice --no-sound`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlay,
	}

	cmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with high scores (default: current user)")
	cmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio output")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	pc, err := config.LoadPacman(flagConfigPath)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	opts := tui.Options{
		Player: playerName(flagPlayer),
		Muted:  pc.Audio.Muted,
		Logger: logger,
	}

	// Scores and sound are optional: the game still works without them.
	if flagDBPath != "" {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			logger.Warn("could not open scores database", "error", storeErr)
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	if pc.Audio.Enabled && !flagNoSound {
		mgr, audioErr := audio.NewManager(audio.NewDeviceBackend(), pc.Audio.VolumeDB)
		if audioErr != nil {
			logger.Warn("audio disabled", "error", audioErr)
		} else {
			defer mgr.Close()
			mgr.SetMuted(pc.Audio.Muted)
			opts.Sound = mgr
		}
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName picks the name saved with scores: the flag, then the login
// name, then a stable per-machine id.
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	id, err := machineid.ProtectedID("tui-pacman")
	if err != nil {
		return "player"
	}
	return "player-" + id[:8]
}
