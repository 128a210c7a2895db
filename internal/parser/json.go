package parser

import (
	"bytes"
	"encoding/json"
)

// JSONParser parses JSON drafts files, either a list of posts or an object
// with a "posts" list.
type JSONParser struct{}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeJSON
}

// Parse parses a JSON file
func (p *JSONParser) Parse(path string, content []byte) ([]Draft, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var entries []postEntry
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
	} else {
		var file struct {
			Posts []postEntry `json:"posts"`
		}
		if err := json.Unmarshal(trimmed, &file); err != nil {
			return nil, err
		}
		entries = file.Posts
	}

	drafts := make([]Draft, 0, len(entries))
	for _, e := range entries {
		drafts = append(drafts, e.draft(0))
	}
	return drafts, nil
}
