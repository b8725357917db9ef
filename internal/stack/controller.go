// Package stack orchestrates the layout and drag handling of one alignment
// group of stacked panels.
package stack

import (
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/gesture"
	"github.com/llehouerou/popstack/internal/panel"
)

// Owner commits changes to the authoritative panel collection. Calls are
// fire-and-forget: the controller sees their effect only when the owner
// hands it a new collection through SetPanels.
type Owner interface {
	UpdatePanel(id panel.ID, mutate func(panel.Panel) panel.Panel)
	DismissPanel(id panel.ID)
}

// Controller holds the panels, geometry and gesture state of one alignment
// group. It is not safe for concurrent use; all calls are expected from the
// host's event loop.
type Controller struct {
	alignment panel.Alignment
	group     panel.GroupConfig
	owner     Owner
	log       *zap.Logger

	panels  []panel.Panel
	geo     geometry.Context
	tracker gesture.Tracker
	dragID  panel.ID
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for gesture decisions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a controller with an empty stack.
func New(a panel.Alignment, group panel.GroupConfig, owner Owner, opts ...Option) *Controller {
	c := &Controller{
		alignment: a,
		group:     group,
		owner:     owner,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.Stringer("stack", a))
	return c
}

// Alignment returns the group this controller lays out.
func (c *Controller) Alignment() panel.Alignment {
	return c.alignment
}

// Group returns the group constants.
func (c *Controller) Group() panel.GroupConfig {
	return c.group
}

// SetGroup replaces the group constants.
func (c *Controller) SetGroup(g panel.GroupConfig) {
	c.group = g
}

// SetPanels replaces the panel collection, bottom to top. A drag in progress
// is abandoned when the active panel changes underneath it.
func (c *Controller) SetPanels(panels []panel.Panel) {
	c.panels = append(c.panels[:0:0], panels...)
	if c.tracker.Phase() == gesture.Dragging {
		if active, ok := c.active(); !ok || active.ID != c.dragID {
			c.log.Debug("drag abandoned", zap.Stringer("panel", c.dragID))
			c.tracker.Reset()
		}
	}
}

// Panels returns a copy of the current collection.
func (c *Controller) Panels() []panel.Panel {
	return append([]panel.Panel(nil), c.panels...)
}

// SetGeometry replaces the geometry context.
func (c *Controller) SetGeometry(geo geometry.Context) {
	c.geo = geo
}

// Geometry returns the current geometry context.
func (c *Controller) Geometry() geometry.Context {
	return c.geo
}

// ReportHeight records the measured content height of a panel. Reporting
// the height the panel already has is a no-op.
func (c *Controller) ReportHeight(id panel.ID, h float64) {
	for _, p := range c.panels {
		if p.ID != id {
			continue
		}
		if cur, ok := p.MeasuredHeight(); ok && cur == h {
			return
		}
		c.owner.UpdatePanel(id, func(p panel.Panel) panel.Panel {
			return p.WithMeasuredHeight(h)
		})
		return
	}
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.tracker.Phase() == gesture.Dragging
}

// DragChanged feeds the raw translation since the drag began. It returns
// false when the active panel does not accept drags.
func (c *Controller) DragChanged(value float64) bool {
	in, ok := gestureInput(c.alignment, c.group, c.panels, c.geo)
	if !ok {
		return false
	}
	active, _ := c.active()
	if !c.tracker.Change(in, value) {
		return false
	}
	c.dragID = active.ID
	return true
}

// DragEnded finishes the gesture with the final raw translation and asks
// the owner to dismiss the active panel or store its new drag height.
func (c *Controller) DragEnded(value float64) gesture.Outcome {
	in, ok := gestureInput(c.alignment, c.group, c.panels, c.geo)
	if !ok {
		c.tracker.Reset()
		return gesture.Outcome{}
	}
	active, _ := c.active()
	out := c.tracker.End(in, value)
	c.dragID = panel.ID{}

	switch {
	case out.Dismiss:
		c.log.Debug("dismiss by drag", zap.Stringer("panel", active.ID))
		c.owner.DismissPanel(active.ID)
	case out.Changed:
		c.log.Debug("snap", zap.Stringer("panel", active.ID),
			zap.Float64("height", in.Height+out.DragHeight),
			zap.Float64("drag_height", out.DragHeight))
		d := out.DragHeight
		c.owner.UpdatePanel(active.ID, func(p panel.Panel) panel.Panel {
			return p.WithDragHeight(d)
		})
	}
	return out
}

// CancelDrag drops the current gesture without a decision.
func (c *Controller) CancelDrag() {
	c.tracker.Reset()
	c.dragID = panel.ID{}
}

// ActivePopupHeight returns the resolved height of the active panel.
func (c *Controller) ActivePopupHeight() (float64, bool) {
	n := len(c.panels)
	if n == 0 {
		return 0, false
	}
	return resolvedHeight(c.panels[n-1], c.geo, c.group, c.alignment, n)
}

// TranslationProgress returns how far the active panel has been dragged
// toward dismissal.
func (c *Controller) TranslationProgress() float64 {
	in, ok := gestureInput(c.alignment, c.group, c.panels, c.geo)
	if !ok {
		return 0
	}
	return c.tracker.Progress(in)
}

// Snapshot lays out the stack for the current inputs.
func (c *Controller) Snapshot() Snapshot {
	return Compute(c.alignment, c.group, c.panels, c.geo, c.tracker.Translation())
}

func (c *Controller) active() (panel.Panel, bool) {
	if len(c.panels) == 0 {
		return panel.Panel{}, false
	}
	return c.panels[len(c.panels)-1], true
}
