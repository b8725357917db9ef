package layout

import "github.com/llehouerou/popstack/internal/panel"

// InvertedIndex is the distance of the panel at index from the top of a
// stack of count panels. The active (last) panel has inverted index 0.
func InvertedIndex(index, count int) int {
	return max(count-1-index, 0)
}

// Growth converts a raw translation into a height change: positive when the
// drag makes the panel taller.
func Growth(direction, translation float64) float64 {
	return direction * translation
}

// Progress is how far the active panel has been pulled toward dismissal,
// relative to its height. It is measured from the resting position, so an
// idle panel is always at 0 whatever its drag height. Zero height or no
// drag axis yields 0.
func Progress(direction, translation, dragHeight, height float64) float64 {
	if height <= 0 || direction == 0 {
		return 0
	}
	return max(-Growth(direction, translation)-max(dragHeight, 0), 0) / height
}

// ActiveOffset is the vertical offset of the active panel. Everything that
// would shrink the panel below its base height turns into a slide away from
// the anchor; the panel never moves past its resting position.
func ActiveOffset(direction, translation, dragHeight float64) float64 {
	return direction * min(dragHeight+Growth(direction, translation), 0)
}

// ActiveHeight is the displayed height of the active panel while dragging:
// the base height plus any growth, never below base nor above the viewport.
func ActiveHeight(base, direction, translation, dragHeight, viewport float64) float64 {
	h := base + max(dragHeight+Growth(direction, translation), 0)
	return max(min(h, viewport), base)
}

// StackInput is everything StackGeometry needs about one panel.
type StackInput struct {
	Alignment   panel.Alignment
	Group       panel.GroupConfig
	Index       int
	Count       int
	Translation float64 // current gesture translation
	DragHeight  float64 // drag height of the active panel
	Progress    float64 // translation progress of the active panel
}

// Geometry is the per-panel visual state produced by StackGeometry.
type Geometry struct {
	Offset  float64
	ScaleX  float64
	Overlay float64
	Visible bool
	Active  bool
}

// StackGeometry computes offset, horizontal scale and overlay darkening for
// one panel of a stack.
func StackGeometry(in StackInput) Geometry {
	k := InvertedIndex(in.Index, in.Count)
	dir := in.Alignment.Direction()

	if k == 0 {
		return Geometry{
			Offset:  ActiveOffset(dir, in.Translation, in.DragHeight),
			ScaleX:  1,
			Visible: true,
			Active:  true,
		}
	}

	if !in.Alignment.Stacks() || !in.Group.Stacking {
		return Geometry{ScaleX: 1}
	}

	remaining := 1 - in.Progress
	scaleMul, overlayMul := remaining, remaining
	if k > 1 {
		scaleMul = max(in.Group.MinScaleMultiplier, remaining)
		overlayMul = max(in.Group.MinOverlayMultiplier, remaining)
	}

	overlay := min(in.Group.StackOverlayFactor*float64(k), in.Group.MaxOverlayFactor) * overlayMul

	return Geometry{
		Offset:  dir * in.Group.StackOffset * float64(k),
		ScaleX:  1 - float64(k)*in.Group.StackScaleFactor*scaleMul,
		Overlay: max(overlay, 0),
		Visible: in.Group.MaxVisibleDepth <= 0 || k <= in.Group.MaxVisibleDepth,
	}
}
