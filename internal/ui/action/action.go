// Package action is how panel content reports back to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result produced by panel content. ActionType names it in
// logs.
type Action interface {
	ActionType() string
}

// Msg carries an Action together with the content that produced it.
type Msg struct {
	Source string // "confirm", "textinput", "helpbindings"
	Action Action
}

var _ tea.Msg = Msg{}
