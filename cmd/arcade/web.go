package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/web"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagWebAddr string

func newWebCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Start the browser front end",
		Long: `Serve Pac-Man over HTTP. Every browser tab plays its own game over a
WebSocket. Finished games are saved to the scores database under a
per-connection name.

Endpoints:
  /             - the game page
  /ws           - WebSocket game session
  /api/scores   - top scores as JSON
  /api/sessions - number of connected players
  /healthz      - liveness check

Examples:
  arcade web
  arcade web --addr 127.0.0.1:9000 --seed 7`,
		Args: cobra.NoArgs,
		RunE: runWeb,
	}

	cmd.Flags().StringVar(&flagWebAddr, "addr", web.DefaultConfig().Address, "HTTP listen address (host:port)")
	return cmd
}

func runWeb(cmd *cobra.Command, _ []string) error {
	pc, err := config.LoadPacman(flagConfigPath)
	if err != nil {
		return err
	}

	cfg := web.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.Rules = pacman.RulesFromConfig(pc)
	cfg.Seed = flagSeed

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	server := web.NewServer(cfg, store, nil)
	fmt.Fprintf(cmd.OutOrStdout(), "Open http://localhost:%s in a browser\n", portOf(cfg.Address))

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// portOf returns the port of a host:port address, or the address itself.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
