package ui

import (
	"fmt"
	"strings"

	"github.com/pthm/postlint/internal/engine"
)

// RenderResult formats one analysis: score line with gauge, then factors,
// warnings and suggestions. Every line is prefixed with indent.
func RenderResult(s *Styles, r engine.Result, indent string) string {
	var sb strings.Builder

	rating := s.RatingStyle(r.RatingClass)
	fmt.Fprintf(&sb, "%s%s %s %s\n",
		indent,
		rating.Render(fmt.Sprintf("%3d/%d", r.Score, r.MaxScore)),
		s.Gauge(r.Score, r.MaxScore, r.RatingClass),
		rating.Render(r.Rating),
	)

	for _, f := range r.Factors {
		style := s.FactorStyle(f.Positive)
		fmt.Fprintf(&sb, "%s  %s %s\n", indent, style.Render(fmt.Sprintf("%4s", f.SignedImpact())), f.Label)
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(&sb, "%s  %s\n", indent, s.Warning.Render(s.IconWarning+" "+w))
	}
	for _, sug := range r.Suggestions {
		fmt.Fprintf(&sb, "%s  %s\n", indent, s.Suggestion.Render(s.IconSuggestion+" "+sug))
	}

	return sb.String()
}
