package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pthm/postlint/internal/engine"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the scoring rules in evaluation order",
	Long: `List every scoring rule in the order it is evaluated. Factors,
suggestions, and warnings in a result always follow this order.

Examples:
  postlint rules
  postlint rules --format json`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}

// ruleInfo is one row of the rules listing
type ruleInfo struct {
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Shape       string `json:"shape"`
	Description string `json:"description"`
}

func listRules() []ruleInfo {
	all := engine.Rules()
	out := make([]ruleInfo, 0, len(all))
	for i, r := range all {
		c := r.Config()
		out = append(out, ruleInfo{
			Order:       i + 1,
			Name:        r.Name(),
			Category:    c.Category.String(),
			Shape:       c.Shape.String(),
			Description: r.Description(),
		})
	}
	return out
}

func runRules(cmd *cobra.Command, args []string) error {
	u := GetUI()
	infos := listRules()

	if u.IsJSON() {
		encoder := json.NewEncoder(u.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	border := lipgloss.NormalBorder()
	if u.IsInteractive() {
		border = lipgloss.RoundedBorder()
	}

	t := table.New().
		Border(border).
		BorderStyle(u.Styles.Separator).
		Headers("#", "RULE", "CATEGORY", "SHAPE", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return u.Styles.Header.Padding(0, 1)
			}
			if col == 1 {
				return u.Styles.Info.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, info := range infos {
		t.Row(strconv.Itoa(info.Order), info.Name, info.Category, info.Shape, info.Description)
	}

	_, err := fmt.Fprintln(u.Writer, t.Render())
	return err
}
