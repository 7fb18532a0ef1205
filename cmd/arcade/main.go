// arcade plays Pac-Man in the terminal, over SSH, or in a browser.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: pacman)
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Start the browser front end
//	arcade scores [game]     - Show high scores for a game
//	arcade rules             - Show how to play
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/scores.db, "" disables)
//	--config <path>   - Use a custom pacman.yaml
//
// ARCADE_DB and ARCADE_CONFIG (also read from a .env file) set the defaults
// of --db and --config.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

const defaultGameID = "pacman"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
})

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("error loading .env file", "error", err)
	}

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arcade",
		Short: "Pac-Man for your terminal",
		Long: `Pac-Man in the terminal, over SSH, or in a browser.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Start SSH server for remote play
  web      - Start the browser front end
  scores   - View high scores
  rules    - How to play

Examples:
  arcade play
  arcade play --seed 42
  arcade serve --ssh :2222
  arcade web --addr :8080
  arcade scores`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			pacman.SetConfigPath(flagConfigPath)
		},
	}

	cmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	cmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("ARCADE_DB", "~/.arcade/scores.db"),
		`Path to scores database ("" disables scores)`)
	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", os.Getenv("ARCADE_CONFIG"),
		"Path to custom pacman.yaml")

	cmd.AddCommand(
		newListCmd(),
		newPlayCmd(),
		newServeCmd(),
		newWebCmd(),
		newScoresCmd(),
		newRulesCmd(),
	)
	return cmd
}

// envOr returns the environment variable key, or def when it is unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// gameArg returns the game named on the command line, or the default game.
func gameArg(args []string) (string, error) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("%w %q (available: %s)", registry.ErrUnknownGame, gameID,
			strings.Join(registry.IDs(), ", "))
	}
	return gameID, nil
}
