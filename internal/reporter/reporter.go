package reporter

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/pthm/postlint/internal/engine"
	"github.com/pthm/postlint/internal/parser"
)

// ErrBelowMinScore is returned by CheckMinScore when a draft scores too low
var ErrBelowMinScore = errors.New("score below minimum")

// Entry pairs a draft with its analysis
type Entry struct {
	Draft  parser.Draft
	Result engine.Result
}

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the results
	Report(entries []Entry) error
}

// Count is how often a factor label or advice message occurred
type Count struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Summary holds statistics for a batch of drafts
type Summary struct {
	Drafts       int            `json:"drafts"`
	AverageScore float64        `json:"averageScore"`
	MinScore     int            `json:"minScore"`
	MaxScore     int            `json:"maxScore"`
	Ratings      map[string]int `json:"ratings"`
	Factors      []Count        `json:"factors"`
	Suggestions  []Count        `json:"suggestions"`
	Warnings     []Count        `json:"warnings"`
}

// ComputeSummary computes summary statistics from entries. Ratings are keyed
// by rating class; frequency lists are sorted most common first.
func ComputeSummary(entries []Entry) Summary {
	s := Summary{
		Drafts:      len(entries),
		Ratings:     make(map[string]int),
		Factors:     []Count{},
		Suggestions: []Count{},
		Warnings:    []Count{},
	}
	if len(entries) == 0 {
		return s
	}

	factors := make(map[string]int)
	suggestions := make(map[string]int)
	warnings := make(map[string]int)

	total := 0
	s.MinScore = entries[0].Result.Score
	s.MaxScore = entries[0].Result.Score
	for _, e := range entries {
		r := e.Result
		total += r.Score
		s.MinScore = min(s.MinScore, r.Score)
		s.MaxScore = max(s.MaxScore, r.Score)
		s.Ratings[r.RatingClass]++

		for _, f := range r.Factors {
			factors[f.Label]++
		}
		for _, msg := range r.Suggestions {
			suggestions[msg]++
		}
		for _, msg := range r.Warnings {
			warnings[msg]++
		}
	}
	s.AverageScore = float64(total) / float64(len(entries))
	s.Factors = rank(factors)
	s.Suggestions = rank(suggestions)
	s.Warnings = rank(warnings)

	return s
}

func rank(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for text, n := range counts {
		out = append(out, Count{Text: text, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Text, b.Text)
	})
	return out
}

// CheckMinScore returns ErrBelowMinScore when any entry scores below
// minScore. A minScore of zero or less disables the check.
func CheckMinScore(entries []Entry, minScore int) error {
	if minScore <= 0 {
		return nil
	}
	var low []string
	for _, e := range entries {
		if e.Result.Score < minScore {
			low = append(low, fmt.Sprintf("%s (%d)", e.Draft.Name, e.Result.Score))
		}
	}
	if len(low) == 0 {
		return nil
	}
	return fmt.Errorf("%w %d: %d of %d drafts %v", ErrBelowMinScore, minScore, len(low), len(entries), low)
}
