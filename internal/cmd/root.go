package cmd

import (
	"log/slog"

	"github.com/pthm/postlint/internal/config"
	"github.com/pthm/postlint/internal/reporter"
	"github.com/pthm/postlint/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string

	// cfg and appUI are set up before every command runs
	cfg   *config.Config
	appUI *ui.UI
)

// RootCmd is the postlint entry point
var RootCmd = &cobra.Command{
	Use:   "postlint",
	Short: "Score social posts for engagement before you publish",
	Long: `postlint scores the text of a social media post on a 0-100 scale,
lists the signals that moved the score, and suggests how to improve it.

Scoring starts from a neutral 40. Questions, hooks, media, threads, lists,
emoji, and a good length add points; engagement bait, shouting in caps,
hashtag stuffing, and external links take them away.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/postlint/config.yaml)")
}

// setup installs the logger, loads configuration and applies flag overrides
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		loaded.Format = format
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	appUI = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Format)
	slog.Debug("configured", "format", cfg.Format, "mode", appUI.Mode, "min_score", cfg.MinScore, "media", cfg.Media)
	return nil
}

// GetUI returns the UI configured for the running command
func GetUI() *ui.UI {
	return appUI
}

// newReporter picks the reporter for the configured format
func newReporter(summaryOnly bool) reporter.Reporter {
	u := GetUI()
	if u.IsJSON() {
		rep := reporter.NewJSONReporter(u.Writer)
		rep.SummaryOnly = summaryOnly
		return rep
	}
	rep := reporter.NewTerminalReporter(u.Writer, u)
	rep.SummaryOnly = summaryOnly
	return rep
}
