package popupctl

import "github.com/llehouerou/popstack/internal/panel"

// Kind discriminates the panels the app opens. It becomes the Kind of the
// panel ID.
type Kind string

const (
	Note    Kind = "note"
	Sheet   Kind = "sheet"
	Full    Kind = "full"
	Dialog  Kind = "dialog"
	Input   Kind = "input"
	Help    Kind = "help"
	Confirm Kind = "confirm"
	Error   Kind = "error"
)

// RenderOrder defines the order stacks are drawn (bottom to top). Centered
// panels are modal and go over the edge stacks.
var RenderOrder = []panel.Alignment{
	panel.AlignTop,
	panel.AlignBottom,
	panel.AlignCenter,
}
