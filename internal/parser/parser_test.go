package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		path     string
		expected FileType
	}{
		{path: "drafts.md", expected: FileTypeMarkdown},
		{path: "/home/me/posts/Launch.MARKDOWN", expected: FileTypeMarkdown},
		{path: "queue.json", expected: FileTypeJSON},
		{path: "queue.yaml", expected: FileTypeYAML},
		{path: "queue.yml", expected: FileTypeYAML},
		{path: "notes.txt", expected: FileTypePlain},
		{path: "-", expected: FileTypePlain},
		{path: "no-extension", expected: FileTypePlain},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := GetFileType(tt.path); got != tt.expected {
				t.Errorf("GetFileType(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestParseBytes_Plain(t *testing.T) {
	content := "first post\n---\n\nsecond post\nline two\n---\n   \n"

	got, err := ParseBytes("queue.txt", []byte(content))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	want := []Draft{
		{Name: "queue.txt#1", Text: "first post", Source: "queue.txt", Line: 1},
		{Name: "queue.txt#2", Text: "second post\nline two", Source: "queue.txt", Line: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drafts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBytes_PlainCRLF(t *testing.T) {
	content := "one\r\n---\r\ntwo\r\n"

	got, err := ParseBytes("crlf.txt", []byte(content))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d drafts, want 2", len(got))
	}
	if got[0].Text != "one" || got[1].Text != "two" {
		t.Errorf("texts = %q, %q", got[0].Text, got[1].Text)
	}
}

func TestParseBytes_Markdown(t *testing.T) {
	content := strings.Join([]string{
		"---",
		"media: false",
		"---",
		"Intro paragraph before any heading?",
		"",
		"# Launch day",
		"",
		"Here's what we shipped today:",
		"- faster builds",
		"- smaller binaries",
		"",
		"![screenshot](https://example.com/shot.png)",
		"",
		"---",
		"",
		"Second untitled draft with a link https://go.dev",
		"",
		"## Empty heading",
		"",
		"## Quoted",
		"",
		"> Hot take: quotes work",
	}, "\n")

	got, err := ParseBytes("drafts.md", []byte(content))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	want := []Draft{
		{
			Name:   "drafts.md#1",
			Text:   "Intro paragraph before any heading?",
			Source: "drafts.md",
			Line:   4,
		},
		{
			Name:     "Launch day",
			Text:     "Here's what we shipped today:\n- faster builds\n- smaller binaries",
			HasMedia: true,
			Source:   "drafts.md",
			Line:     8,
		},
		{
			Name:   "drafts.md#3",
			Text:   "Second untitled draft with a link https://go.dev",
			Source: "drafts.md",
			Line:   16,
		},
		{
			Name:   "Quoted",
			Text:   "> Hot take: quotes work",
			Source: "drafts.md",
			Line:   22,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drafts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBytes_MarkdownFrontmatterMedia(t *testing.T) {
	content := "---\nmedia: true\n---\n# One\n\nfirst\n\n# Two\n\nsecond\n"

	got, err := ParseBytes("gallery.md", []byte(content))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d drafts, want 2", len(got))
	}
	for _, d := range got {
		if !d.HasMedia {
			t.Errorf("draft %q: HasMedia = false, want true from frontmatter", d.Name)
		}
	}
}

func TestParseBytes_YAML(t *testing.T) {
	content := strings.Join([]string{
		"posts:",
		"  - name: launch",
		"    text: |",
		"      Here's the launch thread",
		"    media: true",
		"  - \"Just a string post?\"",
		"  - name: blank",
		"    text: \"   \"",
	}, "\n")

	got, err := ParseBytes("queue.yaml", []byte(content))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	want := []Draft{
		{Name: "launch", Text: "Here's the launch thread\n", HasMedia: true, Source: "queue.yaml", Line: 2},
		{Name: "queue.yaml#2", Text: "Just a string post?", Source: "queue.yaml", Line: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drafts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBytes_YAMLTopLevelList(t *testing.T) {
	got, err := ParseBytes("q.yml", []byte("- one\n- text: two\n  media: true\n"))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d drafts, want 2", len(got))
	}
	if got[1].Text != "two" || !got[1].HasMedia {
		t.Errorf("second draft = %+v", got[1])
	}
}

func TestParseBytes_YAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "posts not a list", content: "posts: 3\n", wantErr: "posts must be a list"},
		{name: "no posts key", content: "drafts: []\n", wantErr: `expected a "posts" key`},
		{name: "scalar document", content: "hello\n", wantErr: "expected a list of posts"},
		{name: "malformed", content: "posts: [\n", wantErr: "parse bad.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes("bad.yaml", []byte(tt.content))
			if err == nil {
				t.Fatal("ParseBytes() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseBytes_JSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Draft
	}{
		{
			name:    "list",
			content: `[{"name":"a","text":"hi?","media":true},{"text":"second"}]`,
			want: []Draft{
				{Name: "a", Text: "hi?", HasMedia: true, Source: "q.json"},
				{Name: "q.json#2", Text: "second", Source: "q.json"},
			},
		},
		{
			name:    "posts object",
			content: `{"posts":[{"text":"only one"}]}`,
			want: []Draft{
				{Name: "q.json#1", Text: "only one", Source: "q.json"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBytes("q.json", []byte(tt.content))
			if err != nil {
				t.Fatalf("ParseBytes() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("drafts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBytes_JSONInvalid(t *testing.T) {
	if _, err := ParseBytes("q.json", []byte(`{"posts": [`)); err == nil {
		t.Error("ParseBytes() error = nil, want syntax error")
	}
}

func TestParseBytes_NoDrafts(t *testing.T) {
	inputs := map[string]string{
		"empty.txt":  "",
		"blank.txt":  "  \n---\n\n",
		"empty.md":   "# Only a heading\n",
		"empty.json": "[]",
		"empty.yaml": "",
	}

	for path, content := range inputs {
		t.Run(path, func(t *testing.T) {
			_, err := ParseBytes(path, []byte(content))
			if !errors.Is(err, ErrNoDrafts) {
				t.Errorf("ParseBytes() error = %v, want ErrNoDrafts", err)
			}
		})
	}
}

func TestParse_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posts.md")
	if err := os.WriteFile(path, []byte("# Hello\n\nWhat do you think?\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d drafts, want 1", len(got))
	}
	if got[0].Name != "Hello" || got[0].Source != path {
		t.Errorf("draft = %+v", got[0])
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Parse() error = %v, want os.ErrNotExist", err)
	}
}

func TestParseReader_Stdin(t *testing.T) {
	got, err := ParseReader("-", strings.NewReader("piped post\n"))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "-#1" || got[0].Text != "piped post" {
		t.Errorf("drafts = %+v", got)
	}
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKeys []string
		wantBody string
	}{
		{
			name:     "with frontmatter",
			content:  "---\nmedia: true\ntags: [go]\n---\nbody\n",
			wantKeys: []string{"media", "tags"},
			wantBody: "body\n",
		},
		{
			name:     "no frontmatter",
			content:  "just text",
			wantBody: "just text",
		},
		{
			name:     "unterminated",
			content:  "---\nmedia: true\n",
			wantBody: "---\nmedia: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := ParseFrontmatter([]byte(tt.content))
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if len(fm) != len(tt.wantKeys) {
				t.Errorf("got %d keys, want %d", len(fm), len(tt.wantKeys))
			}
			for _, k := range tt.wantKeys {
				if _, ok := fm[k]; !ok {
					t.Errorf("missing key %q", k)
				}
			}
		})
	}
}
