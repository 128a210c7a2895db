package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pthm/postlint/internal/engine"
	"github.com/pthm/postlint/internal/parser"
	"github.com/pthm/postlint/internal/reporter"
	"github.com/pthm/postlint/internal/ui"
	"github.com/spf13/cobra"
)

// errNoInput is returned when check has nothing to analyze
var errNoInput = errors.New("no post text provided")

var (
	checkFiles    []string
	checkMedia    bool
	checkMinScore int
)

var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Score one or more posts",
	Long: `Score post text and show what raised or lowered it.

Text comes from the first of: --file paths, the arguments joined by spaces,
or standard input when it is not a terminal. Files may hold several drafts:
plain text split by "---" lines, markdown split by headings, or YAML/JSON
lists of posts.

Examples:
  postlint check "Unpopular opinion: tabs are fine. Agree?"
  postlint check --media "Here's the new dashboard"
  postlint check -F drafts.md -F queue.yaml
  pbpaste | postlint check --min-score 60
  postlint check --format json -F drafts.md > scores.json`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVarP(&checkFiles, "file", "F", nil, "Read drafts from a file (repeatable)")
	checkCmd.Flags().BoolVarP(&checkMedia, "media", "m", false, "Treat text and stdin posts as having media attached")
	checkCmd.Flags().IntVar(&checkMinScore, "min-score", 0, "Fail when any draft scores below this")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	// flags override the loaded config and are held to the same limits
	effective := *cfg
	if cmd.Flags().Changed("media") {
		effective.Media = checkMedia
	}
	if cmd.Flags().Changed("min-score") {
		effective.MinScore = checkMinScore
	}
	if err := effective.Validate(); err != nil {
		return fmt.Errorf("--min-score: %w", err)
	}

	drafts, err := collectDrafts(cmd, args, effective.Media)
	if err != nil {
		return err
	}

	entries := analyzeDrafts(drafts)
	if err := newReporter(false).Report(entries); err != nil {
		return err
	}
	return reporter.CheckMinScore(entries, effective.MinScore)
}

// collectDrafts reads drafts from the first available source
func collectDrafts(cmd *cobra.Command, args []string, media bool) ([]parser.Draft, error) {
	switch {
	case len(checkFiles) > 0:
		return parseFiles(checkFiles)

	case len(args) > 0:
		slog.Debug("reading post from arguments", "args", len(args))
		return []parser.Draft{{
			Name:     "post",
			Text:     strings.Join(args, " "),
			HasMedia: media,
		}}, nil

	case !ui.IsTerminal(cmd.InOrStdin()):
		slog.Debug("reading drafts from stdin")
		drafts, err := parser.ParseReader("-", cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		for i := range drafts {
			drafts[i].HasMedia = drafts[i].HasMedia || media
		}
		return drafts, nil
	}

	return nil, errNoInput
}

// parseFiles reads every file, keeping drafts in file order
func parseFiles(paths []string) ([]parser.Draft, error) {
	var drafts []parser.Draft
	for _, path := range paths {
		parsed, err := parser.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read drafts: %w", err)
		}
		slog.Debug("parsed drafts", "path", path, "type", parser.GetFileType(path), "drafts", len(parsed))
		drafts = append(drafts, parsed...)
	}
	return drafts, nil
}

func analyzeDrafts(drafts []parser.Draft) []reporter.Entry {
	entries := make([]reporter.Entry, 0, len(drafts))
	for _, d := range drafts {
		entries = append(entries, reporter.Entry{
			Draft:  d,
			Result: engine.Analyze(d.Text, d.HasMedia),
		})
	}
	return entries
}
