// Package overlay draws stacked panels on top of a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/stack"
)

// ContentFunc returns the rendered content of a panel.
type ContentFunc func(id panel.ID) string

// Render draws every visible panel of the snapshots over base, in slice
// order and bottom to top within each stack.
func Render(base string, geo geometry.Context, snaps []stack.Snapshot, content ContentFunc) string {
	width := int(geo.ViewportWidth)
	for _, s := range snaps {
		for _, l := range s.Panels {
			if !l.Visible || l.Height <= 0 {
				continue
			}
			r := Bounds(s.Alignment, l, geo)
			box := Frame(s.Alignment, l, r, content(l.ID))
			base = Place(base, box, r.X, r.Y, width)
		}
	}
	return base
}

// Place writes box over base with its top-left corner at (x, y). Rows and
// columns falling outside base are clipped. Styled text on either side is
// preserved.
func Place(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	for i, boxLine := range boxLines {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		startCol := x
		if startCol < 0 {
			boxLine = ansi.Cut(boxLine, -startCol, ansi.StringWidth(boxLine))
			startCol = 0
		}
		endCol := min(startCol+ansi.StringWidth(boxLine), width)
		if startCol >= endCol {
			continue
		}
		boxLine = ansi.Truncate(boxLine, endCol-startCol, "")

		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		line := ansi.Cut(baseLine, 0, startCol) + boxLine
		if endCol < width {
			line += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[row] = line
	}

	return strings.Join(baseLines, "\n")
}
