package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagClearScores bool
	flagPlainScores bool
	flagScorePlayer string
)

var errNoDatabase = errors.New("scores are disabled (--db is empty)")

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores [game]",
		Short: "Show high scores for a game",
		Long: `Display the top 10 high scores for the specified game (default: pacman).

In a terminal the scores open in an interactive table; with --plain, or
when output is redirected, they are printed as text.

Examples:
  arcade scores
  arcade scores --plain
  arcade scores --player alice
  arcade scores --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScores,
	}

	cmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the game")
	cmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print scores as text")
	cmd.Flags().StringVar(&flagScorePlayer, "player", "", "Only show scores of this player (implies --plain)")
	return cmd
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}
	if flagDBPath == "" {
		return errNoDatabase
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", title)
		return nil
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if flagPlainScores || flagScorePlayer != "" || !interactive {
		return printScores(cmd.OutOrStdout(), store, gameID, title, flagScorePlayer)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	return tui.RunScoreboard(store, gameID, title, width, height)
}

// printScores writes the score table as plain text.
func printScores(w io.Writer, store *storage.Store, gameID, title, player string) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if player != "" {
		scores, err = store.PlayerScores(gameID, player, storage.DefaultTopLimit)
	} else {
		scores, err = store.TopScores(gameID, storage.DefaultTopLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-7s  %s\n", "Rank", "Player", "Score", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-7s  %s\n", "----", "------", "-----", "------", "----")
	for i, e := range scores {
		result := "lost"
		if e.Won {
			result = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %-8d  %-7s  %s\n",
			i+1, e.Player, e.Score, result, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Won: %d\n", best, stats.GamesCount, stats.Wins)
	return nil
}
