package layout

import (
	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/panel"
)

// ResolvePadding returns the outer padding of the active panel.
//
// For anchored stacks the far edge keeps its configured padding while there
// is room; the anchor edge gives way first, so a tall panel ends up flush
// with the edge it is pinned to. Horizontal padding passes through.
// Center stacks get no vertical padding except a bottom lift that keeps the
// panel above a visible keyboard.
func ResolvePadding(activeHeight float64, cfg panel.Config, geo geometry.Context, group panel.GroupConfig, a panel.Alignment, count int) panel.Insets {
	out := panel.Insets{
		Leading:  cfg.Padding.Leading,
		Trailing: cfg.Padding.Trailing,
	}

	if !a.Stacks() {
		out.Bottom = keyboardLift(activeHeight, cfg, geo)
		return out
	}

	large := LargeHeight(geo, group, a, count)
	anchor, far := a.AnchorEdge(), a.FarEdge()
	anchorPad := min(cfg.Padding.Get(anchor), max(large-activeHeight-cfg.Padding.Get(far), 0))
	farPad := min(cfg.Padding.Get(far), max(large-activeHeight, 0))

	if anchor == panel.EdgeTop {
		out.Top, out.Bottom = anchorPad, farPad
	} else {
		out.Top, out.Bottom = farPad, anchorPad
	}
	return out
}

// keyboardLift is the bottom padding that moves a centered panel of the
// given height clear of the keyboard. Shrinking the frame by p at the bottom
// moves its center up by p/2.
func keyboardLift(height float64, cfg panel.Config, geo geometry.Context) float64 {
	if !geo.KeyboardVisible {
		return 0
	}
	kb := geo.KeyboardHeight + cfg.KeyboardGap
	return max(2*kb-(geo.ViewportHeight-height), 0)
}

// Corners holds the corner radius on the anchor (near) and far edges.
type Corners struct {
	Near float64
	Far  float64
}

// Top returns the radius of the top corners for the alignment.
func (c Corners) Top(a panel.Alignment) float64 {
	if a == panel.AlignTop {
		return c.Near
	}
	return c.Far
}

// Bottom returns the radius of the bottom corners for the alignment.
func (c Corners) Bottom(a panel.Alignment) float64 {
	if a == panel.AlignTop {
		return c.Far
	}
	return c.Near
}

// ResolveCorners returns the corner radii. Fullscreen panels are square.
// A panel flush with its anchor edge has square corners on that edge; the
// far edge always keeps the configured radius. Center panels never touch an
// edge and keep the radius on both.
func ResolveCorners(cfg panel.Config, padding panel.Insets, a panel.Alignment) Corners {
	if cfg.HeightMode == panel.HeightFullscreen {
		return Corners{}
	}
	r := cfg.CornerRadius
	if !a.Stacks() {
		return Corners{Near: r, Far: r}
	}
	near := r
	if padding.Get(a.AnchorEdge()) == 0 {
		near = 0
	}
	return Corners{Near: near, Far: r}
}

// ResolveBodyPadding returns the padding applied inside the panel around
// its content. It compensates for the safe area on edges the panel reaches
// unless the panel opts out of that edge. While the keyboard is visible the
// bottom inset becomes the keyboard height plus the panel's keyboard gap,
// and the bottom opt-out no longer applies.
func ResolveBodyPadding(height float64, cfg panel.Config, geo geometry.Context, outer panel.Insets, a panel.Alignment) panel.Insets {
	bottomInset := geo.SafeArea.Bottom
	if geo.KeyboardVisible {
		bottomInset = geo.KeyboardHeight + cfg.KeyboardGap
	}

	var body panel.Insets

	if !cfg.IgnoredSafeArea.Contains(panel.EdgeTop) {
		if a == panel.AlignTop {
			body.Top = adhereEdge(geo.SafeArea.Top, outer.Top)
		} else {
			body.Top = counterEdge(geo.SafeArea.Top, height, geo.ViewportHeight)
		}
	}

	if !cfg.IgnoredSafeArea.Contains(panel.EdgeBottom) || geo.KeyboardVisible {
		switch a {
		case panel.AlignBottom:
			body.Bottom = adhereEdge(bottomInset, outer.Bottom)
		case panel.AlignTop:
			body.Bottom = counterEdge(bottomInset, height, geo.ViewportHeight)
		default:
			body.Bottom = counterEdge(geo.SafeArea.Bottom, height, geo.ViewportHeight)
		}
	}

	if !cfg.IgnoredSafeArea.Contains(panel.EdgeLeading) {
		body.Leading = adhereEdge(geo.SafeArea.Leading, outer.Leading)
	}
	if !cfg.IgnoredSafeArea.Contains(panel.EdgeTrailing) {
		body.Trailing = adhereEdge(geo.SafeArea.Trailing, outer.Trailing)
	}
	return body
}

// adhereEdge: the panel rests on this edge, the padding already covers part
// of the inset.
func adhereEdge(inset, outer float64) float64 {
	return max(inset-outer, 0)
}

// counterEdge: the panel only reaches the inset when it is tall enough.
func counterEdge(inset, height, viewport float64) float64 {
	return max(inset+height-viewport, 0)
}
