package rules

import "github.com/pthm/postlint/internal/analyzer"

// Evaluation is the ordered output of running every rule in a registry
type Evaluation struct {
	Factors     []Factor
	Suggestions []string
	Warnings    []string
}

// Evaluate runs the registry's rules against f in registration order. Factor,
// suggestion and warning order follow rule order; nothing is sorted.
func Evaluate(reg *Registry, f analyzer.Features) Evaluation {
	ev := Evaluation{
		Factors:     make([]Factor, 0, len(reg.rules)),
		Suggestions: make([]string, 0),
		Warnings:    make([]string, 0),
	}

	for _, rule := range reg.rules {
		out := rule.Evaluate(f)
		if out.Factor != nil {
			ev.Factors = append(ev.Factors, *out.Factor)
		}
		for _, a := range out.Advice {
			switch a.Severity {
			case Warning:
				ev.Warnings = append(ev.Warnings, a.Message)
			default:
				ev.Suggestions = append(ev.Suggestions, a.Message)
			}
		}
	}

	return ev
}
