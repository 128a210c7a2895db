package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// hookOpeners are matched, lowercased, against the start of the trimmed post only.
var hookOpeners = []string{
	"here's",
	"this is",
	"the",
	"i just",
	"breaking",
	"unpopular opinion",
	"hot take",
	"thread",
	"psa",
	"reminder",
}

// baitPhrases are matched, lowercased, anywhere in the post.
var baitPhrases = []string{
	"retweet if",
	"like if",
	"rt if",
	"follow for",
	"like and retweet",
	"smash that",
	"don't scroll",
}

// runeRange is an inclusive code point range.
type runeRange struct {
	lo, hi rune
}

var emojiRanges = []runeRange{
	{0x1F300, 0x1F9FF}, // pictographs, emoticons, transport, supplemental symbols
	{0x2600, 0x26FF},   // miscellaneous symbols
}

const threadGlyph = '\U0001F9F5'

// isSpace matches the white space set used to split words and trim posts.
// U+FEFF counts as space; U+0085 does not.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// isWordByte matches the ASCII word class [A-Za-z0-9_].
func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// lowerASCII lowercases A-Z and leaves every other rune alone, so non-ASCII
// letters never fold onto ASCII phrases.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func countWords(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if isSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

// countTagged counts occurrences of marker immediately followed by a word
// character. Markers and word characters are ASCII, so scanning bytes never
// splits a multi-byte rune into a false match.
func countTagged(text string, marker byte) int {
	n := 0
	for i := 0; i+1 < len(text); i++ {
		if text[i] == marker && isWordByte(text[i+1]) {
			n++
		}
	}
	return n
}

// hasLink reports an http:// or https:// scheme followed by at least one
// non-space rune. The scheme is case-sensitive.
func hasLink(text string) bool {
	for _, scheme := range []string{"http://", "https://"} {
		rest := text
		for {
			i := strings.Index(rest, scheme)
			if i < 0 {
				break
			}
			rest = rest[i+len(scheme):]
			if r, size := utf8.DecodeRuneInString(rest); size > 0 && !isSpace(r) {
				return true
			}
		}
	}
	return false
}

func hasEmoji(text string) bool {
	for _, r := range text {
		for _, rr := range emojiRanges {
			if rr.lo <= r && r <= rr.hi {
				return true
			}
		}
	}
	return false
}

// isThread looks for the thread glyph, the word "thread" in any case, or
// "1/" numbering followed by a digit.
func isThread(text, lower string) bool {
	if strings.ContainsRune(text, threadGlyph) || strings.Contains(lower, "thread") {
		return true
	}
	rest := text
	for {
		i := strings.Index(rest, "1/")
		if i < 0 {
			return false
		}
		rest = rest[i+2:]
		if len(rest) > 0 && isDigit(rest[0]) {
			return true
		}
	}
}

// hasListFormat reports whether any line opens with "N.", "-" or a bullet.
func hasListFormat(text string) bool {
	for _, line := range strings.FieldsFunc(text, isLineTerminator) {
		switch {
		case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "•"):
			return true
		case len(line) > 0 && isDigit(line[0]):
			i := 0
			for i < len(line) && isDigit(line[i]) {
				i++
			}
			if i < len(line) && line[i] == '.' {
				return true
			}
		}
	}
	return false
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// countCapsRuns counts maximal runs of at least minLen ASCII uppercase letters.
func countCapsRuns(text string, minLen int) int {
	runs, length := 0, 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && 'A' <= text[i] && text[i] <= 'Z' {
			length++
			continue
		}
		if length >= minLen {
			runs++
		}
		length = 0
	}
	return runs
}
