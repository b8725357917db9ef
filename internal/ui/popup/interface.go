package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for the content of a stacked panel.
type Popup interface {
	// Init returns any initial command (e.g., focus text input).
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content (without frame or placement).
	View() string

	// SetSize sets the available dimensions for the popup content.
	SetSize(width, height int)
}

// KeyboardUser is implemented by popups that need the on-screen keyboard
// while they are shown.
type KeyboardUser interface {
	WantsKeyboard() bool
}

// WantsKeyboard reports whether p asks for the keyboard.
func WantsKeyboard(p Popup) bool {
	k, ok := p.(KeyboardUser)
	return ok && k.WantsKeyboard()
}
