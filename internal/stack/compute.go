package stack

import (
	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/gesture"
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/ui/layout"
)

// Compute lays out a stack. It is a pure function of its arguments:
// the same inputs always produce the same Snapshot.
func Compute(a panel.Alignment, group panel.GroupConfig, panels []panel.Panel, geo geometry.Context, translation float64) Snapshot {
	snap := Snapshot{Alignment: a, Translation: translation}
	n := len(panels)
	if n == 0 {
		return snap
	}

	active := panels[n-1]
	dir := a.Direction()
	base, haveActive := resolvedHeight(active, geo, group, a, n)

	var (
		outer   panel.Insets
		corners layout.Corners
	)
	if haveActive {
		snap.ActiveHeight = layout.ActiveHeight(base, dir, translation, active.DragHeight, geo.ViewportHeight)
		snap.Progress = layout.Progress(dir, translation, active.DragHeight, base)
		outer = layout.ResolvePadding(snap.ActiveHeight, active.Config, geo, group, a, n)
		corners = layout.ResolveCorners(active.Config, outer, a)
	}

	snap.Panels = make([]Layout, n)
	for i, p := range panels {
		g := layout.StackGeometry(layout.StackInput{
			Alignment:   a,
			Group:       group,
			Index:       i,
			Count:       n,
			Translation: translation,
			DragHeight:  active.DragHeight,
			Progress:    snap.Progress,
		})

		l := Layout{
			ID:      p.ID,
			Z:       i,
			Offset:  g.Offset,
			ScaleX:  g.ScaleX,
			Overlay: g.Overlay,
			Visible: g.Visible,
			Active:  g.Active,
			Outer:   outer,
			Corners: corners,
		}
		l.ContentHeight, l.HasHeight = resolvedHeight(p, geo, group, a, n)

		switch {
		case haveActive:
			l.Height = snap.ActiveHeight
		case l.HasHeight:
			l.Height = l.ContentHeight
		}
		if g.Active && !haveActive {
			l.Offset = 0
		}
		if l.Height > 0 {
			l.Body = layout.ResolveBodyPadding(l.Height, p.Config, geo, outer, a)
		}

		snap.Panels[i] = l
	}
	return snap
}

func resolvedHeight(p panel.Panel, geo geometry.Context, group panel.GroupConfig, a panel.Alignment, count int) (float64, bool) {
	measured, ok := p.MeasuredHeight()
	if !ok {
		return 0, false
	}
	return layout.ResolveHeight(measured, p.Config, geo, group, a, count), true
}

// gestureInput describes the active panel to the gesture engine.
func gestureInput(a panel.Alignment, group panel.GroupConfig, panels []panel.Panel, geo geometry.Context) (gesture.Input, bool) {
	n := len(panels)
	if n == 0 {
		return gesture.Input{}, false
	}
	active := panels[n-1]
	base, ok := resolvedHeight(active, geo, group, a, n)
	if !ok {
		return gesture.Input{}, false
	}
	large := layout.LargeHeight(geo, group, a, n)
	return gesture.Input{
		Direction:        a.Direction(),
		Height:           base,
		DragHeight:       active.DragHeight,
		DragEnabled:      active.Config.DragEnabled,
		Targets:          layout.ResolveDetents(active.Config.Detents, base, large, geo.ViewportHeight),
		Detented:         len(active.Config.Detents) > 0,
		Viewport:         geo.ViewportHeight,
		DismissThreshold: group.DismissThreshold,
		Overshoot:        group.DragOvershoot,
	}, true
}
