package rules

import "github.com/pthm/postlint/internal/analyzer"

// signalRule scores a single boolean feature. When the feature is present the
// factor is awarded along with onPresent; when it is absent only onMissing is
// emitted, and only positive rules carry one.
type signalRule struct {
	name        string
	description string
	config      RuleConfig
	detect      func(analyzer.Features) bool
	label       string
	impact      int
	onPresent   *Advice
	onMissing   *Advice
}

func (r *signalRule) Name() string {
	return r.name
}

func (r *signalRule) Description() string {
	return r.description
}

func (r *signalRule) Config() RuleConfig {
	return r.config
}

func (r *signalRule) Evaluate(f analyzer.Features) Outcome {
	if r.detect(f) {
		if r.onPresent != nil {
			return award(r.label, r.impact, *r.onPresent)
		}
		return award(r.label, r.impact)
	}
	if r.onMissing != nil {
		return Outcome{Advice: []Advice{*r.onMissing}}
	}
	return Outcome{}
}

func advice(a Advice) *Advice {
	return &a
}

var questionRule = &signalRule{
	name:        "question",
	description: "Rewards posts that ask a question, since replies are weighted heavily",
	config:      RuleConfig{Shape: ShapeBinary, Category: CategoryReply},
	detect:      func(f analyzer.Features) bool { return f.HasQuestion },
	label:       "Contains question",
	impact:      20,
	onMissing:   advice(suggest("Add a question to encourage replies - replies are weighted heavily")),
}

var hookRule = &signalRule{
	name:        "hook",
	description: "Rewards posts that open with a recognized hook phrase",
	config:      RuleConfig{Shape: ShapeBinary, Category: CategoryReply},
	detect:      func(f analyzer.Features) bool { return f.HasHook },
	label:       "Strong opening hook",
	impact:      10,
	onMissing:   advice(suggest(`Start with a hook (e.g., "Here's why...", "Unpopular opinion:")`)),
}

var mediaRule = &signalRule{
	name:        "media",
	description: "Rewards posts with an attached image or video",
	config:      RuleConfig{Shape: ShapeBinary, Category: CategoryDwell},
	detect:      func(f analyzer.Features) bool { return f.HasMedia },
	label:       "Has media attached",
	impact:      15,
	onMissing:   advice(suggest("Add an image or video - media increases dwell time and engagement")),
}

var threadRule = &signalRule{
	name:        "thread",
	description: "Rewards thread markers such as the thread emoji or 1/n numbering",
	config:      RuleConfig{Shape: ShapeBinary, Category: CategoryDwell},
	detect:      func(f analyzer.Features) bool { return f.IsThread },
	label:       "Thread format",
	impact:      10,
}

var listFormatRule = &signalRule{
	name:        "list-format",
	description: "Rewards lines that start with a number, dash, or bullet",
	config:      RuleConfig{Shape: ShapeBinary, Category: CategoryShare},
	detect:      func(f analyzer.Features) bool { return f.HasListFormat },
	label:       "List/structured format",
	impact:      10,
}

var emojiRule = &signalRule{
	name:        "emoji",
	description: "Rewards the use of pictographic emoji",
	config:      RuleConfig{Shape: ShapeBinary, Category: CategoryShare},
	detect:      func(f analyzer.Features) bool { return f.HasEmoji },
	label:       "Uses emoji",
	impact:      5,
}

var engagementBaitRule = &signalRule{
	name:        "engagement-bait",
	description: `Penalizes "retweet if" style engagement bait`,
	config:      RuleConfig{Shape: ShapeNegative, Category: CategoryNegative},
	detect:      func(f analyzer.Features) bool { return f.EngagementBait },
	label:       "Engagement bait detected",
	impact:      -25,
	onPresent:   advice(warn(`Avoid "retweet if" / "like if" - triggers blocks and mutes`)),
}

var excessiveCapsRule = &signalRule{
	name:        "excessive-caps",
	description: "Penalizes more than two runs of four or more capital letters",
	config:      RuleConfig{Shape: ShapeNegative, Category: CategoryNegative},
	detect:      func(f analyzer.Features) bool { return f.ExcessiveCaps },
	label:       "Excessive caps",
	impact:      -10,
	onPresent:   advice(warn("Too many ALL CAPS words can seem spammy")),
}

// linksRule is a penalty whose advice is a suggestion rather than a warning.
var linksRule = &signalRule{
	name:        "links",
	description: "Penalizes external links, which tend to reduce reach",
	config:      RuleConfig{Shape: ShapeBinary, Category: CategoryNegative},
	detect:      func(f analyzer.Features) bool { return f.HasLinks },
	label:       "Contains external link",
	impact:      -5,
	onPresent:   advice(suggest("Consider posting link in reply - external links can reduce reach")),
}
