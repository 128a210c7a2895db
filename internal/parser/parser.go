package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoDrafts is returned when a source holds no non-blank drafts
var ErrNoDrafts = errors.New("no drafts found")

// Draft is a single post waiting to be analyzed
type Draft struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	HasMedia bool   `json:"media"`
	Source   string `json:"source,omitempty"`
	Line     int    `json:"line,omitempty"`
}

// FileType represents the format of a drafts file
type FileType int

const (
	FileTypePlain FileType = iota
	FileTypeMarkdown
	FileTypeJSON
	FileTypeYAML
)

func (t FileType) String() string {
	switch t {
	case FileTypeMarkdown:
		return "markdown"
	case FileTypeJSON:
		return "json"
	case FileTypeYAML:
		return "yaml"
	default:
		return "plain"
	}
}

// Parser defines the interface for reading drafts out of a file
type Parser interface {
	Parse(path string, content []byte) ([]Draft, error)
	CanParse(path string) bool
}

// Parse reads the file at path and returns its drafts
func Parse(path string) ([]Draft, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(path, content)
}

// ParseReader reads drafts from r. name picks the format by extension; "-"
// and unknown extensions are read as plain text.
func ParseReader(name string, r io.Reader) ([]Draft, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseBytes(name, content)
}

// ParseBytes parses content as if it had been read from path. Blank drafts
// are dropped and unnamed drafts are named after the file and their position.
func ParseBytes(path string, content []byte) ([]Draft, error) {
	drafts, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	kept := make([]Draft, 0, len(drafts))
	for _, d := range drafts {
		if strings.TrimSpace(d.Text) == "" {
			continue
		}
		d.Source = path
		kept = append(kept, d)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDrafts)
	}

	base := filepath.Base(path)
	for i := range kept {
		if kept[i].Name == "" {
			kept[i].Name = fmt.Sprintf("%s#%d", base, i+1)
		}
	}
	return kept, nil
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFileType(path) {
	case FileTypeMarkdown:
		return &MarkdownParser{}
	case FileTypeJSON:
		return &JSONParser{}
	case FileTypeYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFileType returns the FileType for a given path
func GetFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FileTypeMarkdown
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	default:
		return FileTypePlain
	}
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed frontmatter and the remaining content without frontmatter
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	remaining = strings.TrimPrefix(remaining, "\r")
	remaining = strings.TrimPrefix(remaining, "\n")

	return frontmatter, []byte(remaining)
}

// lineOf returns the 1-based line number of byte offset pos in src.
func lineOf(src []byte, pos int) int {
	return strings.Count(string(src[:pos]), "\n") + 1
}

// trimBlankLines removes leading and trailing line breaks but keeps any
// indentation on the first line.
func trimBlankLines(s string) string {
	return strings.Trim(s, "\r\n")
}
