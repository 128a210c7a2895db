package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/postlint/internal/engine"
)

// ComposeModel is the bubbletea model for the live scoring editor. The post
// is re-analyzed on every edit and every media toggle.
type ComposeModel struct {
	editor   textarea.Model
	help     help.Model
	keys     composeKeyMap
	styles   *Styles
	chrome   composeStyles
	media    bool
	result   engine.Result
	width    int
	quitting bool
}

type composeKeyMap struct {
	ToggleMedia key.Binding
	Clear       key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap
func (k composeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMedia, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap
func (k composeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type composeStyles struct {
	header    lipgloss.Style
	status    lipgloss.Style
	statusOn  lipgloss.Style
	editorBox lipgloss.Style
}

func defaultComposeKeyMap() composeKeyMap {
	return composeKeyMap{
		ToggleMedia: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle media"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "done"),
		),
	}
}

func defaultComposeStyles() composeStyles {
	return composeStyles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		statusOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		editorBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	}
}

// NewComposeModel creates an editor seeded with text
func NewComposeModel(text string, media bool, styles *Styles) ComposeModel {
	ta := textarea.New()
	ta.Placeholder = "Write your post..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(6)
	ta.SetValue(text)
	ta.Focus()

	m := ComposeModel{
		editor: ta,
		help:   help.New(),
		keys:   defaultComposeKeyMap(),
		styles: styles,
		chrome: defaultComposeStyles(),
		media:  media,
	}
	m.analyze()
	return m
}

func (m *ComposeModel) analyze() {
	m.result = engine.Analyze(m.editor.Value(), m.media)
}

// Init starts the cursor blinking
func (m ComposeModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleMedia):
			m.media = !m.media
			m.analyze()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.editor.Reset()
			m.analyze()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.SetWidth(max(msg.Width-4, 20))
		m.help.Width = msg.Width
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.analyze()
	}
	return m, cmd
}

// View renders the editor above the live analysis
func (m ComposeModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	mediaState := m.chrome.status.Render("media: off")
	if m.media {
		mediaState = m.chrome.statusOn.Render("media: on")
	}
	sb.WriteString(m.chrome.header.Render("postlint compose"))
	sb.WriteString("  ")
	sb.WriteString(mediaState)
	sb.WriteString("\n")

	sb.WriteString(m.chrome.editorBox.Render(m.editor.View()))
	sb.WriteString("\n\n")

	sb.WriteString(RenderResult(m.styles, m.result, " "))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// Text returns the current post text
func (m ComposeModel) Text() string {
	return m.editor.Value()
}

// Media reports whether the post is marked as carrying media
func (m ComposeModel) Media() bool {
	return m.media
}

// Result returns the analysis of the current text
func (m ComposeModel) Result() engine.Result {
	return m.result
}
