package rules

import "slices"

// Registry holds rules in evaluation order
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register appends a rule; registration order is evaluation order
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns the registered rules in evaluation order
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// DefaultRegistry returns a registry with the fixed rule table. The order is
// editorial priority and is what callers see as factor order.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Reply-worthy content
	r.Register(questionRule)
	r.Register(hookRule)

	// Dwell time
	r.Register(&LengthRule{})
	r.Register(mediaRule)
	r.Register(threadRule)

	// Shareability
	r.Register(listFormatRule)
	r.Register(emojiRule)

	// Negative signals
	r.Register(engagementBaitRule)
	r.Register(excessiveCapsRule)
	r.Register(&HashtagRule{})
	r.Register(linksRule)

	return r
}
