// Package engine composes feature extraction, rule evaluation, score
// aggregation and rating classification into a single pure call.
//
// Analyze holds no state between calls and touches nothing outside its
// arguments, so it is safe to call from any number of goroutines.
package engine

import (
	"github.com/pthm/postlint/internal/analyzer"
	"github.com/pthm/postlint/internal/classifier"
	"github.com/pthm/postlint/internal/rules"
)

const (
	// BaseScore is the neutral starting score. It is not a factor.
	BaseScore = 40
	// MinScore and MaxScore bound every result.
	MinScore = 0
	MaxScore = 100
)

// Result is the render-agnostic analysis of one post
type Result struct {
	Score       int            `json:"score"`
	MaxScore    int            `json:"maxScore"`
	Factors     []rules.Factor `json:"factors"`
	Suggestions []string       `json:"suggestions"`
	Warnings    []string       `json:"warnings"`
	Rating      string         `json:"rating"`
	RatingClass string         `json:"ratingClass"`
}

// registry is built once and only read afterwards.
var registry = rules.DefaultRegistry()

// Analyze scores text. hasMedia is supplied by the caller, who is
// responsible for detecting attachments. Every input, including the empty
// string, yields a valid Result.
func Analyze(text string, hasMedia bool) Result {
	features := analyzer.Extract(text, hasMedia)
	ev := rules.Evaluate(registry, features)
	score := Aggregate(ev.Factors)
	rating := classifier.Classify(score)

	return Result{
		Score:       score,
		MaxScore:    MaxScore,
		Factors:     ev.Factors,
		Suggestions: ev.Suggestions,
		Warnings:    ev.Warnings,
		Rating:      rating.Label,
		RatingClass: rating.Class,
	}
}

// Aggregate adds every factor's impact to BaseScore and clamps the total to
// [MinScore, MaxScore].
func Aggregate(factors []rules.Factor) int {
	total := BaseScore
	for _, f := range factors {
		total += f.Impact
	}
	return min(max(total, MinScore), MaxScore)
}

// Rules returns the rules Analyze runs, in evaluation order
func Rules() []rules.Rule {
	return registry.Rules()
}
