package panel

// GroupConfig holds the constants shared by every panel of one alignment
// group.
type GroupConfig struct {
	StackOffset          float64 // distance between stacked panels
	StackScaleFactor     float64 // horizontal shrink per stack level
	StackOverlayFactor   float64 // darkening per stack level
	MaxOverlayFactor     float64 // darkening cap
	DismissThreshold     float64 // progress needed to dismiss on release
	DragOvershoot        float64 // give allowed past the largest detent
	Stacking             bool    // when false, only the active panel is shown
	MaxVisibleDepth      int     // panels deeper than this are hidden; 0 = no limit
	MinScaleMultiplier   float64 // floor of the scale progress multiplier below depth 1
	MinOverlayMultiplier float64 // floor of the overlay progress multiplier below depth 1
}

// DefaultGroupConfig returns the stock group constants.
func DefaultGroupConfig() GroupConfig {
	return GroupConfig{
		StackOffset:          8,
		StackScaleFactor:     0.025,
		StackOverlayFactor:   0.1,
		MaxOverlayFactor:     0.48,
		DismissThreshold:     1.0 / 3.0,
		DragOvershoot:        8,
		Stacking:             true,
		MaxVisibleDepth:      3,
		MinScaleMultiplier:   0.7,
		MinOverlayMultiplier: 0.6,
	}
}
