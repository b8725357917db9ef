// Package helpbindings provides a scrollable panel listing the keybindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/popstack/internal/keymap"
	"github.com/llehouerou/popstack/internal/ui"
	"github.com/llehouerou/popstack/internal/ui/popup"
	"github.com/llehouerou/popstack/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// chromeRows is the title, the footer and the blank line after each.
const chromeRows = 4

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"global", "panels"}

var categoryLabels = map[string]string{
	"global": "Global",
	"panels": "Panels",
}

// Model lists keybindings grouped by context.
type Model struct {
	ui.Base
	bindings []keymap.Binding
	vp       viewport.Model
}

// New creates a help panel for the given contexts. Contexts display in a
// fixed order regardless of how they are passed.
func New(contexts ...string) *Model {
	m := &Model{vp: viewport.New(0, 0)}
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.vp.SetContent(m.buildContent())
	return m
}

// SetSize implements popup.Popup. The list shrinks to its content so the
// panel measures no taller than it needs.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.vp.Width = width
	m.vp.Height = max(min(height-chromeRows, m.vp.TotalLineCount()), 1)
	m.vp.GotoTop()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return closeMsg() }
	case "j", "down":
		m.vp.LineDown(1)
	case "k", "up":
		m.vp.LineUp(1)
	}
	return m, nil
}

// ScrollOffset returns the index of the first visible line.
func (m *Model) ScrollOffset() int {
	return m.vp.YOffset
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}
	s := styles.T().S()

	footer := "?/esc close"
	if !m.fits() {
		footer = "j/k scroll · " + footer
	}

	return s.Title.Render("Help") + "\n\n" +
		m.vp.View() + "\n\n" +
		s.Subtle.Render(footer)
}

func (m *Model) fits() bool {
	return m.vp.TotalLineCount() <= m.vp.Height
}

func (m *Model) buildContent() string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				s.Accent.Render(label),
				s.Subtle.Render(strings.Repeat("─", keyWidth+15)))
			current = b.Context
		}

		keys := strings.Join(b.Keys, ", ")
		lines = append(lines,
			s.Title.Render(keys+strings.Repeat(" ", keyWidth-len(keys)))+"  "+s.Base.Render(b.Description))
	}

	return strings.Join(lines, "\n")
}
