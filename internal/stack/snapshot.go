package stack

import (
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/ui/layout"
)

// Layout is the resolved visual state of one panel.
type Layout struct {
	ID panel.ID
	Z  int // index in the stack, 0 is the bottom-most

	// ContentHeight is the panel's own resolved height; HasHeight is false
	// until its content has been measured.
	ContentHeight float64
	HasHeight     bool

	// Height is the frame height. Stacked panels take the active panel's
	// height so only their edge peeks out.
	Height float64

	Outer   panel.Insets
	Body    panel.Insets
	Corners layout.Corners

	Offset  float64
	ScaleX  float64
	Overlay float64
	Visible bool
	Active  bool
}

// Snapshot is the layout of a whole stack for one set of inputs.
type Snapshot struct {
	Alignment panel.Alignment
	Panels    []Layout // bottom to top

	ActiveHeight float64 // displayed height of the active panel, 0 if unknown
	Translation  float64
	Progress     float64
}

// Active returns the layout of the active panel.
func (s Snapshot) Active() (Layout, bool) {
	if len(s.Panels) == 0 {
		return Layout{}, false
	}
	return s.Panels[len(s.Panels)-1], true
}

// Find returns the layout of the panel with the given ID.
func (s Snapshot) Find(id panel.ID) (Layout, bool) {
	for _, l := range s.Panels {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
