// Package popup defines panel content and a simple titled dialog.
package popup

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/popstack/internal/ui"
	"github.com/llehouerou/popstack/internal/ui/render"
	"github.com/llehouerou/popstack/internal/ui/styles"
)

// Compile-time check that Dialog implements Popup.
var _ Popup = (*Dialog)(nil)

// Style configures the dialog appearance.
type Style struct {
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	FooterStyle  lipgloss.Style
}

// DefaultStyle returns the default dialog style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		TitleStyle:   t.S().Accent,
		ContentStyle: t.S().Base,
		FooterStyle:  t.S().Subtle,
	}
}

// Dialog is panel content with a title, a body and a footer. The footer
// tells how long ago the dialog was opened.
type Dialog struct {
	ui.Base
	Title   string
	Content string
	Footer  string
	Opened  time.Time // zero hides the age
	Style   Style

	// Now is the clock used for the age; nil means time.Now.
	Now func() time.Time
}

// New creates a new dialog with default style.
func New(title, content string, opened time.Time) *Dialog {
	return &Dialog{
		Title:   title,
		Content: content,
		Opened:  opened,
		Style:   DefaultStyle(),
	}
}

// Init implements Popup.
func (d *Dialog) Init() tea.Cmd {
	return nil
}

// Update implements Popup. A dialog has no interaction of its own.
func (d *Dialog) Update(tea.Msg) (Popup, tea.Cmd) {
	return d, nil
}

// View implements Popup.
func (d *Dialog) View() string {
	width := d.Width()
	if width <= 0 {
		return ""
	}
	style := d.Style

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)

	if d.Title != "" {
		lines = append(lines, centerLine(style.TitleStyle.Render(render.Truncate(d.Title, width)), width), "")
	}

	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, style.ContentStyle.Render(render.TruncateAndPad(line, width)))
	}

	if footer := d.footer(); footer != "" {
		lines = append(lines, "", centerLine(style.FooterStyle.Render(render.Truncate(footer, width)), width))
	}

	return strings.Join(lines, "\n")
}

func (d *Dialog) footer() string {
	var parts []string
	if !d.Opened.IsZero() {
		now := time.Now
		if d.Now != nil {
			now = d.Now
		}
		parts = append(parts, "opened "+humanize.RelTime(d.Opened, now(), "ago", "from now"))
	}
	if d.Footer != "" {
		parts = append(parts, d.Footer)
	}
	return strings.Join(parts, " · ")
}

// MaxLineWidth returns the display width of the widest line of s.
func MaxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		w := lipgloss.Width(line)
		if w > maxW {
			maxW = w
		}
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}
