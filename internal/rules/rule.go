package rules

import (
	"fmt"

	"github.com/pthm/postlint/internal/analyzer"
)

// Severity represents how a piece of advice is surfaced
type Severity int

const (
	// Suggestion is raised when a desirable signal is missing
	Suggestion Severity = iota
	// Warning is raised when an undesirable signal is present
	Warning
)

func (s Severity) String() string {
	switch s {
	case Suggestion:
		return "suggestion"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Shape describes how a rule turns a feature into a factor
type Shape int

const (
	// ShapeBinary awards a fixed impact when a condition holds
	ShapeBinary Shape = iota
	// ShapeTiered awards at most one bucket from an if/else-if chain over a count
	ShapeTiered
	// ShapeNegative penalizes a detected pattern and warns about it
	ShapeNegative
)

func (s Shape) String() string {
	switch s {
	case ShapeBinary:
		return "binary"
	case ShapeTiered:
		return "tiered"
	case ShapeNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Category groups rules by the engagement signal they target
type Category int

const (
	// CategoryReply targets signals that invite replies
	CategoryReply Category = iota
	// CategoryDwell targets signals that keep readers on the post
	CategoryDwell
	// CategoryShare targets signals that make a post easy to share
	CategoryShare
	// CategoryNegative covers patterns that cost reach
	CategoryNegative
)

func (c Category) String() string {
	switch c {
	case CategoryReply:
		return "reply"
	case CategoryDwell:
		return "dwell"
	case CategoryShare:
		return "share"
	case CategoryNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Factor is one scored signal
type Factor struct {
	Label    string `json:"label"`
	Impact   int    `json:"impact"`
	Positive bool   `json:"positive"`
}

// NewFactor builds a factor; Positive mirrors the sign of impact.
func NewFactor(label string, impact int) Factor {
	return Factor{Label: label, Impact: impact, Positive: impact > 0}
}

// SignedImpact renders the impact with an explicit sign, e.g. "+20" or "-5".
func (f Factor) SignedImpact() string {
	return fmt.Sprintf("%+d", f.Impact)
}

// Advice is a suggestion or warning attached to a rule outcome
type Advice struct {
	Severity Severity
	Message  string
}

// Outcome is the result of evaluating one rule: zero or one factor and any advice.
type Outcome struct {
	Factor *Factor
	Advice []Advice
}

// RuleConfig describes a rule for listings
type RuleConfig struct {
	Shape    Shape
	Category Category
}

// Rule defines the interface for scoring rules
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Config returns the rule's configuration
	Config() RuleConfig

	// Evaluate scores the feature set. Rules never depend on each other's
	// outcomes and never fail.
	Evaluate(f analyzer.Features) Outcome
}

func award(label string, impact int, advice ...Advice) Outcome {
	f := NewFactor(label, impact)
	return Outcome{Factor: &f, Advice: advice}
}

func suggest(msg string) Advice {
	return Advice{Severity: Suggestion, Message: msg}
}

func warn(msg string) Advice {
	return Advice{Severity: Warning, Message: msg}
}
