package textinput

import "github.com/llehouerou/popstack/internal/ui/action"

// Result is what the input panel reports when it closes: the typed text on
// enter, Canceled on escape.
type Result struct {
	Text     string
	Canceled bool
}

func (Result) ActionType() string { return "textinput.result" }

func resultMsg(r Result) action.Msg {
	return action.Msg{Source: "textinput", Action: r}
}
