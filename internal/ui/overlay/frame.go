package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/stack"
	"github.com/llehouerou/popstack/internal/ui"
	"github.com/llehouerou/popstack/internal/ui/styles"
)

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bounds returns where a panel frame lands on screen. The frame is
// centered horizontally in the space left by its outer padding and shrunk
// by its scale; vertically it rests against its alignment edge and is moved
// by its offset.
func Bounds(a panel.Alignment, l stack.Layout, geo geometry.Context) Rect {
	vh := geo.ViewportHeight
	h := l.Height

	var y float64
	switch a {
	case panel.AlignTop:
		y = l.Outer.Top
	case panel.AlignBottom:
		y = vh - l.Outer.Bottom - h
	default:
		y = l.Outer.Top + (vh-l.Outer.Top-l.Outer.Bottom-h)/2
	}
	y += l.Offset

	avail := max(geo.ViewportWidth-l.Outer.Leading-l.Outer.Trailing, 0)
	w := math.Round(avail * l.ScaleX)
	x := l.Outer.Leading + (avail-w)/2

	return Rect{X: cells(x), Y: cells(y), W: int(w), H: cells(h)}
}

// ContentSize returns the room left for content inside a frame once the
// border and body padding are taken out.
func ContentSize(l stack.Layout, r Rect) (width, height int) {
	width = r.W - ui.BorderWidth - cells(l.Body.Leading) - cells(l.Body.Trailing)
	height = r.H - ui.BorderHeight - cells(l.Body.Top) - cells(l.Body.Bottom)
	return max(width, 0), max(height, 0)
}

// Frame renders content inside a bordered box filling r. Stacked panels are
// drawn without their own styling, faded by their overlay opacity.
func Frame(a panel.Alignment, l stack.Layout, r Rect, content string) string {
	if r.W < ui.BorderWidth || r.H < ui.BorderHeight {
		return ""
	}
	innerW, innerH := r.W-ui.BorderWidth, r.H-ui.BorderHeight
	contentW, contentH := ContentSize(l, r)
	top, lead := cells(l.Body.Top), min(cells(l.Body.Leading), innerW)
	trail := max(innerW-lead-contentW, 0)

	lines := strings.Split(content, "\n")
	if !l.Active {
		for i := range lines {
			lines[i] = ansi.Strip(lines[i])
		}
	}

	blank := strings.Repeat(" ", innerW)
	rows := make([]string, innerH)
	for i := range rows {
		ci := i - top
		if ci < 0 || ci >= contentH || ci >= len(lines) {
			rows[i] = blank
			continue
		}
		line := ansi.Truncate(lines[ci], contentW, "")
		line += strings.Repeat(" ", contentW-ansi.StringWidth(line))
		rows[i] = strings.Repeat(" ", lead) + line + strings.Repeat(" ", trail)
	}

	style := lipgloss.NewStyle().
		Border(styles.FrameBorder(l.Corners.Top(a), l.Corners.Bottom(a))).
		BorderForeground(styles.FrameColor(l.Active, l.Overlay))
	if !l.Active {
		style = style.Foreground(styles.TextColor(l.Overlay))
	}
	return style.Render(strings.Join(rows, "\n"))
}

func cells(v float64) int {
	return int(math.Round(v))
}
