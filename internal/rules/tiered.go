package rules

import "github.com/pthm/postlint/internal/analyzer"

// LengthRule buckets posts by word count. 10 to 19 words falls between the
// buckets and scores nothing.
type LengthRule struct{}

func (r *LengthRule) Name() string {
	return "length"
}

func (r *LengthRule) Description() string {
	return "Rewards 20-50 words (+15), under 10 words (+5), or over 50 words (+12)"
}

func (r *LengthRule) Config() RuleConfig {
	return RuleConfig{Shape: ShapeTiered, Category: CategoryDwell}
}

func (r *LengthRule) Evaluate(f analyzer.Features) Outcome {
	switch {
	case f.WordCount >= 20 && f.WordCount <= 50:
		return award("Good length for dwell time", 15)
	case f.WordCount < 10:
		return award("Short post", 5,
			suggest("Longer posts increase dwell time - consider expanding"))
	case f.WordCount > 50:
		return award("Long-form content", 12)
	}
	return Outcome{}
}

// HashtagRule penalizes hashtag stuffing and rewards light use. Exactly three
// hashtags falls between the buckets and scores nothing.
type HashtagRule struct{}

func (r *HashtagRule) Name() string {
	return "hashtags"
}

func (r *HashtagRule) Description() string {
	return "Penalizes more than 3 hashtags (-10) and rewards 1-2 hashtags (+5)"
}

func (r *HashtagRule) Config() RuleConfig {
	return RuleConfig{Shape: ShapeTiered, Category: CategoryNegative}
}

func (r *HashtagRule) Evaluate(f analyzer.Features) Outcome {
	switch {
	case f.HashtagCount > 3:
		return award("Too many hashtags", -10,
			warn("More than 3 hashtags looks spammy - reduce them"))
	case f.HashtagCount >= 1 && f.HashtagCount <= 2:
		return award("Good hashtag usage", 5)
	}
	return Outcome{}
}
