package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// gaugeWidth is the width of the score bar in cells
const gaugeWidth = 20

// ratingColors holds the ANSI color of each rating class
var ratingColors = map[string]string{
	"excellent": "10",
	"good":      "14",
	"fair":      "11",
	"poor":      "9",
}

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Suggestion lipgloss.Style
	Info       lipgloss.Style
	Success    lipgloss.Style

	// Factor styles
	Positive lipgloss.Style
	Negative lipgloss.Style

	// Rating styles, keyed by rating class
	Excellent lipgloss.Style
	Good      lipgloss.Style
	Fair      lipgloss.Style
	Poor      lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Rule      lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError      string
	IconWarning    string
	IconSuggestion string
	IconInfo       string
	IconSuccess    string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))       // Red
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
		s.Suggestion = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))       // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))    // Green

		s.Positive = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Negative = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

		s.Excellent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ratingColors["excellent"]))
		s.Good = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ratingColors["good"]))
		s.Fair = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ratingColors["fair"]))
		s.Poor = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ratingColors["poor"]))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Rule = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconError = "✗"
		s.IconWarning = "⚠"
		s.IconSuggestion = "\U0001f4a1"
		s.IconInfo = "ℹ"
		s.IconSuccess = "✓"
	} else {
		// No-op styles for non-TTY (plain text output)
		plain := lipgloss.NewStyle()
		s.Error, s.Warning, s.Suggestion, s.Info, s.Success = plain, plain, plain, plain, plain
		s.Positive, s.Negative = plain, plain
		s.Excellent, s.Good, s.Fair, s.Poor = plain, plain, plain, plain
		s.Header, s.Subheader, s.Path, s.Rule, s.Separator = plain, plain, plain, plain, plain

		// ASCII fallback icons
		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconSuggestion = "HINT:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// RatingStyle returns the style for a rating class (excellent, good, fair, poor)
func (s *Styles) RatingStyle(class string) lipgloss.Style {
	switch class {
	case "excellent":
		return s.Excellent
	case "good":
		return s.Good
	case "fair":
		return s.Fair
	default:
		return s.Poor
	}
}

// FactorStyle returns the style for a factor with the given sign
func (s *Styles) FactorStyle(positive bool) lipgloss.Style {
	if positive {
		return s.Positive
	}
	return s.Negative
}

// Gauge renders score out of maxScore as a bar. Interactive output gets a
// colored progress bar; plain output gets an ASCII one.
func (s *Styles) Gauge(score, maxScore int, class string) string {
	pct := 0.0
	if maxScore > 0 {
		pct = float64(min(max(score, 0), maxScore)) / float64(maxScore)
	}

	if !s.enabled {
		filled := int(pct * gaugeWidth)
		return fmt.Sprintf("[%s%s]", strings.Repeat("#", filled), strings.Repeat("-", gaugeWidth-filled))
	}

	color, ok := ratingColors[class]
	if !ok {
		color = ratingColors["poor"]
	}
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(gaugeWidth),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(pct)
}
