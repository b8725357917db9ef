// Package headerbar renders the title row with one tab per panel stack.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/ui/render"
	"github.com/llehouerou/popstack/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Stack is the state of one panel stack shown as a tab.
type Stack struct {
	Alignment panel.Alignment
	Count     int
}

// Status holds the toggles shown on the right of the header.
type Status struct {
	Keyboard bool
	Stacking bool
	Dragging bool
}

func tabStyles(active bool) (count, name lipgloss.Style) {
	s := styles.T().S()
	if active {
		return s.Accent, s.Accent
	}
	return s.Muted, s.Base
}

// Render returns the header bar for the given width. The stack holding the
// panel that receives input is highlighted.
func Render(stacks []Stack, active panel.Alignment, hasActive bool, status Status, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()

	title := styles.Gradient("popstack", t.Primary, t.Secondary)

	parts := make([]string, 0, len(stacks))
	for _, st := range stacks {
		countStyle, nameStyle := tabStyles(hasActive && st.Alignment == active)
		parts = append(parts, countStyle.Render(fmt.Sprint(st.Count))+" "+nameStyle.Render(st.Alignment.String()))
	}
	tabs := strings.Join(parts, t.S().Subtle.Render(" │ "))

	return render.Row(" "+title+"  "+tabs, t.S().Subtle.Render(status.String())+" ", width)
}

func (s Status) String() string {
	var flags []string
	if s.Dragging {
		flags = append(flags, "dragging")
	}
	if s.Keyboard {
		flags = append(flags, "keyboard")
	}
	if !s.Stacking {
		flags = append(flags, "flat")
	}
	return strings.Join(flags, " · ")
}
