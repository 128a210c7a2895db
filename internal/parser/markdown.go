package parser

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// imageMarkup matches inline and reference-style image syntax. Images only
// mark a draft as carrying media; their markup is not part of the post.
var imageMarkup = regexp.MustCompile(`!\[[^\]]*\](\([^)]*\)|\[[^\]]*\])`)

// MarkdownParser parses markdown drafts files. Every heading starts a new
// draft named after it, and thematic breaks split drafts too.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeMarkdown
}

// Parse parses a markdown file into drafts
func (p *MarkdownParser) Parse(path string, content []byte) ([]Draft, error) {
	frontmatter, source := ParseFrontmatter(content)
	lineOffset := lineOf(content, len(content)-len(source)) - 1

	defaultMedia := false
	if v, ok := frontmatter["media"].(bool); ok {
		defaultMedia = v
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var drafts []Draft
	current := &mdDraft{media: defaultMedia}
	flush := func() {
		if d, ok := current.build(source); ok {
			d.Line += lineOffset
			drafts = append(drafts, d)
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			flush()
			current = &mdDraft{name: string(node.Text(source)), media: defaultMedia}
		case *ast.ThematicBreak:
			flush()
			current = &mdDraft{media: defaultMedia}
		default:
			start, stop, ok := blockBounds(n)
			if !ok {
				continue
			}
			current.add(lineStart(source, start), stop)
			if containsImage(n) {
				current.media = true
			}
		}
	}
	flush()

	return drafts, nil
}

// mdDraft accumulates the source span of the blocks under one heading
type mdDraft struct {
	name  string
	media bool
	start int
	stop  int
	used  bool
}

func (d *mdDraft) add(start, stop int) {
	if !d.used || start < d.start {
		d.start = start
	}
	if !d.used || stop > d.stop {
		d.stop = stop
	}
	d.used = true
}

func (d *mdDraft) build(source []byte) (Draft, bool) {
	if !d.used {
		return Draft{}, false
	}
	body := imageMarkup.ReplaceAllString(string(source[d.start:d.stop]), "")
	return Draft{
		Name:     d.name,
		Text:     trimBlankLines(body),
		HasMedia: d.media,
		Line:     lineOf(source, d.start),
	}, true
}

// blockBounds returns the byte span covered by the lines of n and every block
// nested under it.
func blockBounds(n ast.Node) (start, stop int, ok bool) {
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		start = lines.At(0).Start
		stop = lines.At(lines.Len() - 1).Stop
		ok = true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != ast.TypeBlock {
			continue
		}
		s, e, cok := blockBounds(c)
		if !cok {
			continue
		}
		if !ok || s < start {
			start = s
		}
		if !ok || e > stop {
			stop = e
		}
		ok = true
	}
	return start, stop, ok
}

// lineStart walks back from pos to the beginning of its line so list and
// quote markers stay part of the draft.
func lineStart(source []byte, pos int) int {
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}
	return pos
}

func containsImage(n ast.Node) bool {
	found := false
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := c.(*ast.Image); ok {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
