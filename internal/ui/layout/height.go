package layout

import (
	"slices"

	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/panel"
)

// StackingBudget returns the height reserved for the stacked panels peeking
// out behind the active one. Center stacks and stacks with stacking turned
// off reserve nothing.
func StackingBudget(group panel.GroupConfig, a panel.Alignment, count int) float64 {
	if !a.Stacks() || !group.Stacking {
		return 0
	}
	return group.StackOffset * float64(max(count-1, 0))
}

// LargeHeight is the tallest a non-fullscreen panel may be: the viewport
// minus the inset away from the anchor and the stacking budget. Center stacks
// subtract both vertical insets.
func LargeHeight(geo geometry.Context, group panel.GroupConfig, a panel.Alignment, count int) float64 {
	return geo.ViewportHeight - geo.AwayInset(a) - StackingBudget(group, a, count)
}

// ResolveHeight turns a measured content height into the panel height for
// the panel's height mode.
func ResolveHeight(measured float64, cfg panel.Config, geo geometry.Context, group panel.GroupConfig, a panel.Alignment, count int) float64 {
	switch cfg.HeightMode {
	case panel.HeightLarge:
		return LargeHeight(geo, group, a, count)
	case panel.HeightFullscreen:
		return geo.ViewportHeight
	default:
		return min(measured, LargeHeight(geo, group, a, count))
	}
}

// ResolveDetents converts detents into ascending absolute candidate heights.
// The panel's own height is always one of the candidates. Fixed and fraction
// detents are capped at the large height.
func ResolveDetents(detents []panel.Detent, activeHeight, large, viewport float64) []float64 {
	heights := make([]float64, 0, len(detents)+1)
	for _, d := range detents {
		heights = append(heights, DetentHeight(d, activeHeight, large, viewport))
	}
	heights = append(heights, activeHeight)
	slices.Sort(heights)
	return slices.Compact(heights)
}

// DetentHeight resolves a single detent. Fixed and fractional detents never
// go below the active height: shrinking past the base height is a dismiss
// gesture, not a snap target.
func DetentHeight(d panel.Detent, activeHeight, large, viewport float64) float64 {
	switch d.Kind {
	case panel.DetentFixed:
		return max(min(d.Value, large), activeHeight)
	case panel.DetentFraction:
		return max(min(d.Value*activeHeight, large), activeHeight)
	case panel.DetentLarge:
		return large
	case panel.DetentFullscreen:
		return viewport
	}
	return activeHeight
}
