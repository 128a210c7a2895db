package analyzer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Features is the fixed set of signals derived from a post. A value is built
// once per Extract call and never modified afterwards.
type Features struct {
	WordCount      int  `json:"wordCount"`
	CharCount      int  `json:"charCount"`
	HasQuestion    bool `json:"hasQuestion"`
	HashtagCount   int  `json:"hashtagCount"`
	HasLinks       bool `json:"hasLinks"`
	HasMention     bool `json:"hasMention"`
	HasEmoji       bool `json:"hasEmoji"`
	HasMedia       bool `json:"hasMedia"`
	IsThread       bool `json:"isThread"`
	HasListFormat  bool `json:"hasListFormat"`
	HasHook        bool `json:"hasHook"`
	EngagementBait bool `json:"engagementBait"`
	ExcessiveCaps  bool `json:"excessiveCaps"`
}

// HasHashtags reports whether the post carries at least one hashtag.
func (f Features) HasHashtags() bool {
	return f.HashtagCount > 0
}

const (
	// minCapsRun is the shortest run of uppercase letters that counts as shouting.
	minCapsRun = 4
	// maxCapsRuns is how many shouting runs a post may carry before it is flagged.
	maxCapsRuns = 2
)

// Extract derives the feature set for text. hasMedia is taken as given; the
// extractor never looks for attachments itself. Extract accepts any string,
// including empty and invalid UTF-8.
func Extract(text string, hasMedia bool) Features {
	lower := lowerASCII(text)

	return Features{
		WordCount:      countWords(text),
		CharCount:      uniseg.GraphemeClusterCount(text),
		HasQuestion:    strings.IndexByte(text, '?') >= 0,
		HashtagCount:   countTagged(text, '#'),
		HasLinks:       hasLink(text),
		HasMention:     countTagged(text, '@') > 0,
		HasEmoji:       hasEmoji(text),
		HasMedia:       hasMedia,
		IsThread:       isThread(text, lower),
		HasListFormat:  hasListFormat(text),
		HasHook:        hasPrefixAny(strings.TrimFunc(lower, isSpace), hookOpeners),
		EngagementBait: containsAny(lower, baitPhrases),
		ExcessiveCaps:  countCapsRuns(text, minCapsRun) > maxCapsRuns,
	}
}
