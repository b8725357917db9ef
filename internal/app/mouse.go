package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/ui/overlay"
)

// dragState tracks a mouse drag on the active panel of one stack.
type dragState struct {
	active bool
	align  panel.Alignment
	startY int
}

// translation is the vertical distance from the press, positive downward.
func (d dragState) translation(y int) float64 {
	return float64(y - d.startY)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if a, ok := m.draggableAt(msg.X, msg.Y); ok {
			m.drag = dragState{active: true, align: a, startY: msg.Y}
		}

	case tea.MouseActionMotion:
		if m.drag.active {
			m.Popups.Controller(m.drag.align).DragChanged(m.drag.translation(msg.Y))
		}

	case tea.MouseActionRelease:
		if !m.drag.active {
			return
		}
		out := m.Popups.Controller(m.drag.align).DragEnded(m.drag.translation(msg.Y))
		m.log.Debug("drag ended",
			zap.Stringer("stack", m.drag.align),
			zap.Bool("dismiss", out.Dismiss),
			zap.Float64("drag_height", out.DragHeight))
		m.drag = dragState{}
	}
}

// draggableAt returns the stack whose active panel is under (x, y). Stacks
// drawn later are hit first; a panel that cannot be dragged still blocks
// the ones below it.
func (m *Model) draggableAt(x, y int) (panel.Alignment, bool) {
	geo := m.Popups.Geometry()
	snaps := m.Popups.Snapshots()
	for i := len(snaps) - 1; i >= 0; i-- {
		s := snaps[i]
		l, ok := s.Active()
		if !ok || !l.Visible || l.Height <= 0 {
			continue
		}
		if overlay.Bounds(s.Alignment, l, geo).Contains(x, y) {
			return s.Alignment, s.Alignment.Draggable()
		}
	}
	return 0, false
}
