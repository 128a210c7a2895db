package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pthm/postlint/internal/parser"
	"github.com/pthm/postlint/internal/reporter"
	"github.com/pthm/postlint/internal/ui"
	"github.com/spf13/cobra"
)

var composeMedia bool

var composeCmd = &cobra.Command{
	Use:   "compose [text...]",
	Short: "Write a post with a live score",
	Long: `Opens an editor that re-scores the post on every keystroke.

Controls:
  ctrl+t   Toggle media attached
  ctrl+l   Clear the editor
  esc      Finish and print the final analysis

Examples:
  postlint compose
  postlint compose --media "Here's what we shipped"`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().BoolVarP(&composeMedia, "media", "m", false, "Start with media attached")
	RootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
		return errors.New("compose requires an interactive terminal (TTY); use check for non-interactive input")
	}

	media := cfg.Media
	if cmd.Flags().Changed("media") {
		media = composeMedia
	}

	// The editor always draws in color; the final report follows --format.
	model := ui.NewComposeModel(strings.Join(args, " "), media, ui.NewStyles(true))
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("error running composer: %w", err)
	}

	m, ok := final.(ui.ComposeModel)
	if !ok {
		return fmt.Errorf("unexpected composer model %T", final)
	}

	entries := []reporter.Entry{{
		Draft:  parser.Draft{Name: "compose", Text: m.Text(), HasMedia: m.Media()},
		Result: m.Result(),
	}}
	if err := newReporter(false).Report(entries); err != nil {
		return err
	}
	return reporter.CheckMinScore(entries, cfg.MinScore)
}
