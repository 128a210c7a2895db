package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/postlint/internal/engine"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer

	// SummaryOnly drops the per-draft results
	SummaryOnly bool
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Results []JSONResult `json:"results,omitempty"`
	Summary Summary      `json:"summary"`
}

// JSONResult represents one analyzed draft in JSON format
type JSONResult struct {
	Name     string        `json:"name"`
	Source   string        `json:"source,omitempty"`
	Line     int           `json:"line,omitempty"`
	HasMedia bool          `json:"hasMedia"`
	Analysis engine.Result `json:"analysis"`
}

// Report outputs entries as JSON
func (r *JSONReporter) Report(entries []Entry) error {
	output := JSONOutput{
		Summary: ComputeSummary(entries),
	}

	if !r.SummaryOnly {
		output.Results = make([]JSONResult, 0, len(entries))
		for _, e := range entries {
			output.Results = append(output.Results, JSONResult{
				Name:     e.Draft.Name,
				Source:   e.Draft.Source,
				Line:     e.Draft.Line,
				HasMedia: e.Draft.HasMedia,
				Analysis: e.Result,
			})
		}
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
