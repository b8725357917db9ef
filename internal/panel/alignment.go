package panel

// Alignment is the viewport edge a stack of panels is pinned to.
type Alignment int

const (
	AlignTop Alignment = iota
	AlignBottom
	AlignCenter
)

// Alignments lists every alignment group in render order.
var Alignments = []Alignment{AlignTop, AlignCenter, AlignBottom}

func (a Alignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignCenter:
		return "center"
	}
	return "unknown"
}

// Direction is the sign applied to every translation, offset and clamp:
// +1 for top, -1 for bottom, 0 for center.
func (a Alignment) Direction() float64 {
	switch a {
	case AlignTop:
		return 1
	case AlignBottom:
		return -1
	default:
		return 0
	}
}

// Stacks reports whether stacked panels peek out behind the active one.
func (a Alignment) Stacks() bool {
	return a == AlignTop || a == AlignBottom
}

// Draggable reports whether the alignment has a drag axis.
func (a Alignment) Draggable() bool {
	return a.Stacks()
}

// AnchorEdge is the edge the panel rests against. Center has none and
// reports EdgeBottom so keyboard handling treats it like the bottom edge.
func (a Alignment) AnchorEdge() Edge {
	if a == AlignTop {
		return EdgeTop
	}
	return EdgeBottom
}

// FarEdge is the edge opposite the anchor.
func (a Alignment) FarEdge() Edge {
	if a == AlignTop {
		return EdgeBottom
	}
	return EdgeTop
}
