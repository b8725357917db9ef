package styles

import "github.com/charmbracelet/lipgloss"

var (
	roundedBorder = lipgloss.RoundedBorder()
	squareBorder  = lipgloss.NormalBorder()
)

// FrameBorder returns the border of a panel frame. A zero radius gives a
// square corner, anything else a rounded one.
func FrameBorder(topRadius, bottomRadius float64) lipgloss.Border {
	b := roundedBorder
	if topRadius <= 0 {
		b.TopLeft = squareBorder.TopLeft
		b.TopRight = squareBorder.TopRight
	}
	if bottomRadius <= 0 {
		b.BottomLeft = squareBorder.BottomLeft
		b.BottomRight = squareBorder.BottomRight
	}
	return b
}

// FrameColor returns the border color of a panel faded by its overlay
// opacity.
func FrameColor(active bool, overlay float64) lipgloss.Color {
	t := T()
	if active {
		return t.BorderFocus
	}
	return Dim(t.Border, overlay)
}

// TextColor returns the foreground for panel content faded by its overlay
// opacity.
func TextColor(overlay float64) lipgloss.Color {
	return Dim(T().FgBase, overlay)
}
