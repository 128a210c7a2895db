package parser

import (
	"strings"
)

// draftSeparator on a line of its own splits a plain file into drafts
const draftSeparator = "---"

// PlainParser parses plain text files
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse splits content into drafts on separator lines
func (p *PlainParser) Parse(path string, content []byte) ([]Draft, error) {
	lines := strings.Split(string(content), "\n")

	var drafts []Draft
	start := 0
	flush := func(end int) {
		chunk := trimBlankLines(strings.Join(lines[start:end], "\n"))
		if chunk == "" {
			return
		}
		first := start
		for first < end && strings.TrimSpace(lines[first]) == "" {
			first++
		}
		drafts = append(drafts, Draft{Text: chunk, Line: first + 1})
	}

	for i, line := range lines {
		if strings.TrimRight(line, "\r") == draftSeparator {
			flush(i)
			start = i + 1
		}
	}
	flush(len(lines))

	return drafts, nil
}
