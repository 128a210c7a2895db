package cmd

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Summarize scores across draft files",
	Long: `Score every draft in the given files and print a batch summary.

This includes:
  - Draft count and average, lowest, and highest score
  - Rating distribution
  - Most frequent factors, warnings, and suggestions

Examples:
  postlint report drafts.md
  postlint report week1.yaml week2.yaml --format json > report.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	drafts, err := parseFiles(args)
	if err != nil {
		return err
	}
	return newReporter(true).Report(analyzeDrafts(drafts))
}
