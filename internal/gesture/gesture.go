// Package gesture turns vertical pointer drags on the active panel of a
// stack into detent snaps or a dismiss request.
package gesture

import (
	"math"

	"github.com/llehouerou/popstack/internal/ui/layout"
)

// Phase is the state of a Tracker.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Input describes the active panel for one gesture event.
type Input struct {
	Direction        float64   // +1 top, -1 bottom, 0 disables dragging
	Height           float64   // resolved height of the active panel, before drag
	DragHeight       float64   // drag height left by previous gestures
	DragEnabled      bool      // per-panel switch
	Targets          []float64 // ascending snap candidates, including Height
	Detented         bool      // the panel has configured detents
	Viewport         float64   // viewport height
	DismissThreshold float64   // progress at which a release dismisses
	Overshoot        float64   // give past the largest detent
}

func (in Input) enabled() bool {
	return in.DragEnabled && in.Direction != 0
}

// Outcome is the decision taken when a gesture ends.
type Outcome struct {
	Dismiss    bool
	DragHeight float64 // new drag height when not dismissing
	Changed    bool    // DragHeight differs from the input's
}

// Tracker owns the transient translation of one stack. The zero value is
// an idle tracker.
type Tracker struct {
	phase       Phase
	translation float64
}

// Phase returns the current state.
func (t *Tracker) Phase() Phase {
	return t.phase
}

// Translation returns the clamped translation since the drag began.
func (t *Tracker) Translation() float64 {
	return t.translation
}

// Progress returns the translation progress for the given panel.
func (t *Tracker) Progress(in Input) float64 {
	return layout.Progress(in.Direction, t.translation, in.DragHeight, in.Height)
}

// Reset returns to Idle with no translation.
func (t *Tracker) Reset() {
	t.phase = Idle
	t.translation = 0
}

// Change records a new raw translation. It returns false when the panel
// does not accept drags.
func (t *Tracker) Change(in Input, value float64) bool {
	if !in.enabled() {
		return false
	}
	t.phase = Dragging
	t.translation = Translate(in, value)
	return true
}

// End applies the final translation, decides between dismissing and
// snapping, and resets the tracker.
func (t *Tracker) End(in Input, value float64) Outcome {
	t.Change(in, value)
	translation := t.translation
	t.Reset()

	out := Outcome{DragHeight: in.DragHeight}
	if !in.enabled() || translation == 0 || in.Height <= 0 {
		return out
	}

	if layout.Progress(in.Direction, translation, in.DragHeight, in.Height) >= in.DismissThreshold {
		out.Dismiss = true
		return out
	}

	out.DragHeight = Snap(in, translation) - in.Height
	out.Changed = out.DragHeight != in.DragHeight
	return out
}

// Translate clamps a raw translation. Without detents the panel can only
// move toward dismissal. With detents, growing is capped at the largest
// detent plus the overshoot.
func Translate(in Input, value float64) float64 {
	if !in.Detented {
		return extreme(in.Direction, value, 0)
	}
	if layout.Growth(in.Direction, value) <= 0 || in.Height <= 0 || len(in.Targets) == 0 {
		return value
	}
	maxHeight := min(in.Targets[len(in.Targets)-1]+in.Overshoot, in.Viewport)
	limit := (maxHeight - in.Height - in.DragHeight) * in.Direction
	return extreme(in.Direction, limit, value)
}

// extreme picks the value that is furthest toward dismissal.
func extreme(direction, a, b float64) float64 {
	if direction > 0 {
		return min(a, b)
	}
	return max(a, b)
}

// Snap returns the height the panel settles at after a drag of the given
// translation.
//
// The first candidate at or above the dragged height is chosen when
// growing, the one below it otherwise. When the drag covered less than the
// dismiss threshold of the distance to that candidate, the neighbor on the
// other side is used instead.
func Snap(in Input, translation float64) float64 {
	previous := in.Height + in.DragHeight
	if len(in.Targets) == 0 {
		return previous
	}

	growth := layout.Growth(in.Direction, translation)
	current := previous + growth
	growing := growth > 0
	last := len(in.Targets) - 1

	initial := last
	for i, h := range in.Targets {
		if h >= current {
			initial = i
			break
		}
	}

	idx := initial
	if !growing {
		idx = max(initial-1, 0)
	}

	if delta := math.Abs(previous - in.Targets[idx]); delta > 0 {
		if math.Abs(current-previous)/delta < in.DismissThreshold {
			if growing {
				idx--
			} else {
				idx++
			}
			idx = max(min(idx, last), 0)
		}
	}

	return min(in.Targets[idx], in.Viewport)
}
