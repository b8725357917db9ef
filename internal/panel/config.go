package panel

// HeightMode selects how a panel's height follows its content.
type HeightMode int

const (
	// HeightAuto fits the content, capped at the large height.
	HeightAuto HeightMode = iota
	// HeightLarge always fills the large height.
	HeightLarge
	// HeightFullscreen always fills the viewport, ignoring insets.
	HeightFullscreen
)

func (m HeightMode) String() string {
	switch m {
	case HeightAuto:
		return "auto"
	case HeightLarge:
		return "large"
	case HeightFullscreen:
		return "fullscreen"
	}
	return "unknown"
}

// ParseHeightMode maps a configuration string to a HeightMode.
// Unknown values fall back to HeightAuto.
func ParseHeightMode(s string) HeightMode {
	switch s {
	case "large":
		return HeightLarge
	case "fullscreen":
		return HeightFullscreen
	default:
		return HeightAuto
	}
}

// DetentKind discriminates Detent values.
type DetentKind int

const (
	DetentFixed DetentKind = iota
	DetentFraction
	DetentLarge
	DetentFullscreen
)

// Detent is a height a panel can snap to at the end of a drag.
type Detent struct {
	Kind  DetentKind
	Value float64 // height for DetentFixed, factor for DetentFraction
}

// Fixed returns a detent at an absolute height.
func Fixed(h float64) Detent { return Detent{Kind: DetentFixed, Value: h} }

// Fraction returns a detent at a multiple of the panel's current height.
func Fraction(f float64) Detent { return Detent{Kind: DetentFraction, Value: f} }

// LargeDetent snaps to the group's large height.
func LargeDetent() Detent { return Detent{Kind: DetentLarge} }

// FullscreenDetent snaps to the full viewport height.
func FullscreenDetent() Detent { return Detent{Kind: DetentFullscreen} }

// Edge is one side of the viewport.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing
)

// EdgeSet is a set of edges.
type EdgeSet uint8

// Edges builds a set from individual edges.
func Edges(edges ...Edge) EdgeSet {
	var s EdgeSet
	for _, e := range edges {
		s |= EdgeSet(e)
	}
	return s
}

// AllEdges contains every edge.
const AllEdges = EdgeSet(EdgeTop | EdgeBottom | EdgeLeading | EdgeTrailing)

// Contains reports whether e is in the set.
func (s EdgeSet) Contains(e Edge) bool {
	return s&EdgeSet(e) != 0
}

// Insets holds one value per edge.
type Insets struct {
	Top      float64
	Bottom   float64
	Leading  float64
	Trailing float64
}

// Get returns the value for a single edge.
func (in Insets) Get(e Edge) float64 {
	switch e {
	case EdgeTop:
		return in.Top
	case EdgeBottom:
		return in.Bottom
	case EdgeLeading:
		return in.Leading
	case EdgeTrailing:
		return in.Trailing
	}
	return 0
}

// Config is the per-panel configuration consumed by the engine.
// Values are taken as-is; validation belongs to whoever builds the Config.
type Config struct {
	HeightMode      HeightMode
	Padding         Insets
	CornerRadius    float64
	IgnoredSafeArea EdgeSet
	DragEnabled     bool
	Detents         []Detent
	KeyboardGap     float64
}

// DefaultConfig returns an auto-height, draggable panel with no padding.
func DefaultConfig() Config {
	return Config{
		HeightMode:   HeightAuto,
		CornerRadius: 1,
		DragEnabled:  true,
	}
}
