// Package textinput provides a single-line text entry panel backed by the
// bubbles text input.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/popstack/internal/ui"
	"github.com/llehouerou/popstack/internal/ui/popup"
	"github.com/llehouerou/popstack/internal/ui/styles"
)

// Compile-time checks.
var (
	_ popup.Popup        = (*Model)(nil)
	_ popup.KeyboardUser = (*Model)(nil)
)

// promptWidth is the width of "> ".
const promptWidth = 2

// Model is a text entry panel. It reports a Result on enter or escape.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
}

// New creates a focused text input with a title and optional initial text.
func New(title, initialText string) *Model {
	t := styles.T()

	in := textinput.New()
	in.Prompt = "> "
	in.PromptStyle = t.S().Accent
	in.TextStyle = t.S().Base
	in.PlaceholderStyle = t.S().Muted
	in.Placeholder = "type something"
	in.SetValue(initialText)
	in.Focus()

	return &Model{title: title, input: in}
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// WantsKeyboard implements popup.KeyboardUser.
func (m *Model) WantsKeyboard() bool {
	return true
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-promptWidth-1, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, m.result(Result{Canceled: true})
		case "enter":
			return m, m.result(Result{Text: m.input.Value()})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) result(r Result) tea.Cmd {
	return func() tea.Msg { return resultMsg(r) }
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}
	s := styles.T().S()

	return s.Title.Render(m.title) + "\n\n" +
		m.input.View() + "\n\n" +
		s.Subtle.Render("enter confirm · esc cancel")
}
