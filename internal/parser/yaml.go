package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// postEntry is one draft in a YAML or JSON drafts file
type postEntry struct {
	Name  string `yaml:"name" json:"name"`
	Text  string `yaml:"text" json:"text"`
	Media bool   `yaml:"media" json:"media"`
}

func (e postEntry) draft(line int) Draft {
	return Draft{Name: e.Name, Text: e.Text, HasMedia: e.Media, Line: line}
}

// YAMLParser parses YAML drafts files. The document is either a list of
// posts or a mapping with a "posts" list; list items may be plain strings.
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeYAML
}

// Parse parses a YAML file
func (p *YAMLParser) Parse(path string, content []byte) ([]Draft, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return p.extractPosts(root)
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "posts" {
				return p.extractPosts(root.Content[i+1])
			}
		}
		return nil, fmt.Errorf("line %d: expected a \"posts\" key", root.Line)
	default:
		return nil, fmt.Errorf("line %d: expected a list of posts", root.Line)
	}
}

// extractPosts decodes each list item, keeping its source line
func (p *YAMLParser) extractPosts(list *yaml.Node) ([]Draft, error) {
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: posts must be a list", list.Line)
	}

	drafts := make([]Draft, 0, len(list.Content))
	for _, item := range list.Content {
		if item.Kind == yaml.ScalarNode {
			drafts = append(drafts, Draft{Text: item.Value, Line: item.Line})
			continue
		}
		var entry postEntry
		if err := item.Decode(&entry); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		drafts = append(drafts, entry.draft(item.Line))
	}
	return drafts, nil
}
