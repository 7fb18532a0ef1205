package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed rules.md
var rulesMarkdown string

var (
	flagRulesWidth int
	flagRulesStyle string
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show how to play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderRules(flagRulesStyle, flagRulesWidth))
			return nil
		},
	}
	cmd.Flags().IntVar(&flagRulesWidth, "width", 80, "Word wrap width")
	cmd.Flags().StringVar(&flagRulesStyle, "style", "dark", "Glamour style (dark, light, notty, ...)")
	return cmd
}

// renderRules renders the rules for the terminal, falling back to the raw
// markdown if glamour fails.
func renderRules(style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return rulesMarkdown
	}
	out, err := r.Render(rulesMarkdown)
	if err != nil {
		return rulesMarkdown
	}
	return out
}
