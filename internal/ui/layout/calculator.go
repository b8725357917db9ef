// Package layout provides pure functions for panel and screen dimension
// calculations.
package layout

import "github.com/llehouerou/popstack/internal/panel"

// HeaderHeight is the number of rows taken by the title bar.
const HeaderHeight = 1

// FooterHeight is the number of rows taken by the key help footer.
const FooterHeight = 1

// MinKeyboardRows keeps a simulated keyboard visible on tiny terminals.
const MinKeyboardRows = 3

// ChromeOpts describes the fixed rows drawn around the panel area.
type ChromeOpts struct {
	HeaderHeight int
	FooterHeight int // 0 when the footer is hidden
	Extra        panel.Insets
}

// SafeArea returns the insets panels must keep their content out of: the
// header and footer rows plus any configured extra margin.
func SafeArea(opts ChromeOpts) panel.Insets {
	return panel.Insets{
		Top:      float64(opts.HeaderHeight) + opts.Extra.Top,
		Bottom:   float64(opts.FooterHeight) + opts.Extra.Bottom,
		Leading:  opts.Extra.Leading,
		Trailing: opts.Extra.Trailing,
	}
}

// ContentHeight calculates the height of the area behind the panels.
func ContentHeight(windowHeight int, opts ChromeOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.FooterHeight, 0)
}

// KeyboardHeight clamps a requested keyboard height to half the window,
// never below MinKeyboardRows unless the window itself is smaller.
func KeyboardHeight(windowHeight, requested int) int {
	if windowHeight <= 0 {
		return 0
	}
	h := min(requested, windowHeight/2)
	if h < MinKeyboardRows {
		h = min(MinKeyboardRows, windowHeight)
	}
	return h
}

// KeyboardRow calculates the 0-based row where a keyboard of height h
// starts. Returns windowHeight when no keyboard is shown.
func KeyboardRow(windowHeight, h int) int {
	if h <= 0 {
		return windowHeight
	}
	return max(windowHeight-h, 0)
}
