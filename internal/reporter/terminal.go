package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/postlint/internal/classifier"
	"github.com/pthm/postlint/internal/ui"
)

// topN caps each frequency list in the terminal summary
const topN = 5

// TerminalReporter outputs results to the terminal using lipgloss styles
type TerminalReporter struct {
	w  io.Writer
	ui *ui.UI

	// SummaryOnly prints the batch summary without per-draft results
	SummaryOnly bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u}
}

// Report outputs entries to the terminal
func (r *TerminalReporter) Report(entries []Entry) error {
	s := r.ui.Styles

	if len(entries) == 0 {
		fmt.Fprintln(r.w, s.Info.Render(s.IconInfo+" No drafts to analyze"))
		return nil
	}

	if r.SummaryOnly {
		r.printDetailedSummary(ComputeSummary(entries))
		return nil
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.printEntry(e)
	}

	if len(entries) > 1 {
		r.printSummaryLine(ComputeSummary(entries))
	}
	return nil
}

func (r *TerminalReporter) printEntry(e Entry) {
	s := r.ui.Styles

	header := s.Header.Render(e.Draft.Name)
	if loc := location(e.Draft.Source, e.Draft.Line); loc != "" {
		header += " " + s.Path.Render(loc)
	}
	if e.Draft.HasMedia {
		header += " " + s.Subheader.Render("[media]")
	}
	fmt.Fprintln(r.w, header)
	fmt.Fprint(r.w, ui.RenderResult(s, e.Result, "  "))
}

func location(source string, line int) string {
	if source == "" || source == "-" {
		return ""
	}
	if line > 0 {
		return fmt.Sprintf("%s:%d", source, line)
	}
	return source
}

func (r *TerminalReporter) printSummaryLine(sum Summary) {
	s := r.ui.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render(strings.Repeat("─", 37)))
	fmt.Fprintf(r.w, "%d drafts, average %.1f (min %d, max %d): %s\n",
		sum.Drafts, sum.AverageScore, sum.MinScore, sum.MaxScore, r.ratingParts(sum))
}

// ratingParts renders the rating distribution, highest band first
func (r *TerminalReporter) ratingParts(sum Summary) string {
	s := r.ui.Styles

	var parts []string
	for _, b := range classifier.Bands() {
		n := sum.Ratings[b.Rating.Class]
		if n == 0 {
			continue
		}
		parts = append(parts, s.RatingStyle(b.Rating.Class).Render(fmt.Sprintf("%d %s", n, b.Rating.Label)))
	}
	return strings.Join(parts, ", ")
}

func (r *TerminalReporter) printDetailedSummary(sum Summary) {
	s := r.ui.Styles

	fmt.Fprintln(r.w, s.Header.Render("Draft Report"))
	fmt.Fprintln(r.w, s.Separator.Render(strings.Repeat("─", 37)))
	fmt.Fprintf(r.w, "  Drafts:        %d\n", sum.Drafts)
	fmt.Fprintf(r.w, "  Average score: %.1f\n", sum.AverageScore)
	fmt.Fprintf(r.w, "  Lowest score:  %d\n", sum.MinScore)
	fmt.Fprintf(r.w, "  Highest score: %d\n", sum.MaxScore)
	fmt.Fprintf(r.w, "  Ratings:       %s\n", r.ratingParts(sum))

	r.printCounts("Top factors", sum.Factors, s.Info.Render(s.IconInfo))
	r.printCounts("Top warnings", sum.Warnings, s.Warning.Render(s.IconWarning))
	r.printCounts("Top suggestions", sum.Suggestions, s.Suggestion.Render(s.IconSuggestion))
}

func (r *TerminalReporter) printCounts(title string, counts []Count, icon string) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.ui.Styles.Subheader.Render(title+":"))
	for _, c := range counts[:min(len(counts), topN)] {
		fmt.Fprintf(r.w, "  %s %3dx %s\n", icon, c.Count, c.Text)
	}
}
