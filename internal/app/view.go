// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/popstack/internal/app/popupctl"
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/ui/headerbar"
	"github.com/llehouerou/popstack/internal/ui/layout"
	"github.com/llehouerou/popstack/internal/ui/overlay"
	"github.com/llehouerou/popstack/internal/ui/styles"
)

var backdropHint = []string{
	"t top · b sheet · f fullscreen · c dialog · i input",
	"drag edge panels with the mouse to resize or dismiss",
	"K keyboard · s stacking · ? help",
}

var keyboardRows = []string{
	"q w e r t y u i o p",
	"a s d f g h j k l",
	"z x c v b n m",
	"space",
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	lines := make([]string, 0, m.Height)
	lines = append(lines, m.renderHeader())
	lines = append(lines, m.renderBackdrop(layout.ContentHeight(m.Height, m.chrome()))...)
	lines = append(lines, lipgloss.NewStyle().MaxWidth(m.Width).Render(m.help.View(m.keys)))
	if len(lines) > m.Height {
		lines = lines[:m.Height]
	}
	view := strings.Join(lines, "\n")

	view = overlay.Render(view, m.Popups.Geometry(), m.Popups.Snapshots(), m.panelContent)

	if m.keyboardVisible() {
		h := m.keyboardHeight()
		view = overlay.Place(view, m.renderKeyboard(h), 0, layout.KeyboardRow(m.Height, h), m.Width)
	}
	return view
}

func (m Model) panelContent(id panel.ID) string {
	c, ok := m.Popups.Content(id)
	if !ok {
		return ""
	}
	return c.View()
}

func (m Model) renderHeader() string {
	stacks := make([]headerbar.Stack, 0, len(popupctl.RenderOrder))
	for _, a := range popupctl.RenderOrder {
		stacks = append(stacks, headerbar.Stack{Alignment: a, Count: len(m.Popups.Panels(a))})
	}

	var active panel.Alignment
	id, _, hasActive := m.Popups.Latest()
	if hasActive {
		active, _ = m.Popups.AlignmentOf(id)
	}

	return headerbar.Render(stacks, active, hasActive, headerbar.Status{
		Keyboard: m.keyboardVisible(),
		Stacking: m.Stacking,
		Dragging: m.drag.active,
	}, m.Width)
}

func (m Model) renderBackdrop(height int) []string {
	if height <= 0 {
		return nil
	}
	hint := styles.T().S().Subtle.MaxWidth(m.Width).Render(strings.Join(backdropHint, "\n"))
	placed := lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, hint)
	return strings.Split(placed, "\n")[:height]
}

// renderKeyboard draws the simulated keyboard, its rows centered in height
// rows.
func (m Model) renderKeyboard(height int) string {
	rows := keyboardRows[:min(height, len(keyboardRows))]
	top := (height - len(rows)) / 2

	style := styles.T().S().Keyboard.Width(m.Width).Align(lipgloss.Center)
	lines := make([]string, height)
	for i := range lines {
		row := ""
		if j := i - top; j >= 0 && j < len(rows) {
			row = rows[j]
		}
		lines[i] = style.Render(row)
	}
	return strings.Join(lines, "\n")
}
