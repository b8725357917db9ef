// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Panel actions
	ActionShowNote       Action = "show_note"       // t - top panel
	ActionShowSheet      Action = "show_sheet"      // b - bottom panel with detents
	ActionShowFull       Action = "show_full"       // f - fullscreen bottom panel
	ActionShowDialog     Action = "show_dialog"     // c - center panel
	ActionShowInput      Action = "show_input"      // i - center input, raises the keyboard
	ActionDismiss        Action = "dismiss"         // esc - newest panel
	ActionDismissAll     Action = "dismiss_all"     // X - asks first
	ActionToggleKeyboard Action = "toggle_keyboard" // K
	ActionToggleStacking Action = "toggle_stacking" // s
)
