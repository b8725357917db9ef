// Package confirm provides a yes/no confirmation panel.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/popstack/internal/ui"
	"github.com/llehouerou/popstack/internal/ui/popup"
	"github.com/llehouerou/popstack/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model asks a question and reports the answer once. With options, the
// last option means cancel.
type Model struct {
	ui.Base
	title    string
	message  string
	context  any
	options  []string
	selected int
	answered bool
}

// New creates a yes/no confirmation.
func New(title, message string, context any) *Model {
	return &Model{title: title, message: message, context: context}
}

// NewWithOptions creates a confirmation choosing among options.
func NewWithOptions(title, message string, options []string, context any) *Model {
	m := New(title, message, context)
	m.options = options
	return m
}

// Answered reports whether a result has been sent.
func (m *Model) Answered() bool {
	return m.answered
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return m, nil
	}

	if len(m.options) > 0 {
		return m, m.handleOptionKey(keyMsg.String())
	}
	return m, m.handleYesNoKey(keyMsg.String())
}

func (m *Model) handleOptionKey(key string) tea.Cmd {
	last := len(m.options) - 1
	switch key {
	case "up", "k":
		m.selected = max(m.selected-1, 0)
	case "down", "j":
		m.selected = min(m.selected+1, last)
	case "enter":
		return m.answer(m.selected < last, m.selected)
	case "esc":
		return m.answer(false, last)
	}
	return nil
}

func (m *Model) handleYesNoKey(key string) tea.Cmd {
	switch key {
	case "enter", "y", "Y":
		return m.answer(true, 0)
	case "esc", "n", "N":
		return m.answer(false, 0)
	}
	return nil
}

func (m *Model) answer(confirmed bool, option int) tea.Cmd {
	m.answered = true
	res := Result{Confirmed: confirmed, Context: m.context, Option: option}
	return func() tea.Msg { return ActionMsg(res) }
}

// View implements popup.Popup.
func (m *Model) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	parts := []string{
		s.Accent.Render(m.title),
		s.Base.Width(width).Render(m.message),
	}

	if len(m.options) > 0 {
		lines := make([]string, len(m.options))
		for i, opt := range m.options {
			if i == m.selected {
				lines[i] = s.Accent.Render("> " + opt)
			} else {
				lines[i] = s.Base.Render("  " + opt)
			}
		}
		parts = append(parts,
			lipgloss.JoinVertical(lipgloss.Left, lines...),
			s.Subtle.Render("↑↓/jk navigate · enter select"))
	} else {
		parts = append(parts, s.Subtle.Render("enter/y confirm · esc/n cancel"))
	}

	return strings.Join(parts, "\n\n")
}
