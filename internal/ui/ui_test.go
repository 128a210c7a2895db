package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pthm/postlint/internal/engine"
)

func TestNew_Mode(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   OutputMode
	}{
		{name: "json format", format: "json", want: OutputModeJSON},
		{name: "terminal format to buffer", format: "terminal", want: OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := New(&bytes.Buffer{}, &bytes.Buffer{}, tt.format)
			if u.Mode != tt.want {
				t.Errorf("Mode = %v, want %v", u.Mode, tt.want)
			}
			if u.Styles.Enabled() {
				t.Error("Styles.Enabled() = true for non-terminal output")
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(buffer) = true, want false")
	}
	if IsTerminal(strings.NewReader("x")) {
		t.Error("IsTerminal(reader) = true, want false")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("IsTerminal(regular file) = true, want false")
	}
}

func TestGauge_Plain(t *testing.T) {
	s := NewStyles(false)

	tests := []struct {
		score int
		want  string
	}{
		{score: 0, want: "[--------------------]"},
		{score: 50, want: "[##########----------]"},
		{score: 100, want: "[####################]"},
		{score: 150, want: "[####################]"},
	}

	for _, tt := range tests {
		if got := s.Gauge(tt.score, 100, "fair"); got != tt.want {
			t.Errorf("Gauge(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRatingStyle_Fallback(t *testing.T) {
	s := NewStyles(true)
	if got, want := s.RatingStyle("unknown").Render("x"), s.Poor.Render("x"); got != want {
		t.Errorf("RatingStyle(unknown) rendered %q, want %q", got, want)
	}
}

func TestRenderResult_Plain(t *testing.T) {
	s := NewStyles(false)
	out := RenderResult(s, engine.Analyze("Why?", false), "")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	wantLines := []string{
		" 65/100 [#############-------] Good",
		"   +20 Contains question",
		"    +5 Short post",
		"  HINT: Start with a hook (e.g., \"Here's why...\", \"Unpopular opinion:\")",
		"  HINT: Longer posts increase dwell time - consider expanding",
		"  HINT: Add an image or video - media increases dwell time and engagement",
	}
	if len(lines) != len(wantLines) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantLines), out)
	}
	for i := range wantLines {
		if lines[i] != wantLines[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], wantLines[i])
		}
	}
}

func TestRenderResult_Warnings(t *testing.T) {
	s := NewStyles(false)
	out := RenderResult(s, engine.Analyze("RETWEET IF you agree", false), "  ")

	if !strings.Contains(out, "  -25 Engagement bait detected") {
		t.Errorf("missing penalty line:\n%s", out)
	}
	if !strings.Contains(out, "WARN: Avoid \"retweet if\"") {
		t.Errorf("missing warning line:\n%s", out)
	}
}

func TestComposeModel(t *testing.T) {
	m := NewComposeModel("", false, NewStyles(false))
	if got := m.Result().Score; got != 45 {
		t.Fatalf("empty draft score = %d, want 45", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Why?")})
	m = next.(ComposeModel)
	if m.Text() != "Why?" {
		t.Fatalf("Text() = %q, want %q", m.Text(), "Why?")
	}
	if got := m.Result().Score; got != 65 {
		t.Errorf("score after typing = %d, want 65", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(ComposeModel)
	if !m.Media() {
		t.Fatal("Media() = false after ctrl+t")
	}
	if got := m.Result().Score; got != 80 {
		t.Errorf("score with media = %d, want 80", got)
	}
	if m.Result().Rating != "Excellent" {
		t.Errorf("Rating = %q, want Excellent", m.Result().Rating)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(ComposeModel)
	if m.Text() != "" {
		t.Errorf("Text() after clear = %q, want empty", m.Text())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ComposeModel)
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestComposeModel_View(t *testing.T) {
	m := NewComposeModel("Here's why this matters", true, NewStyles(false))
	view := m.View()

	for _, want := range []string{"postlint compose", "media: on", "Strong opening hook", "toggle media"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
