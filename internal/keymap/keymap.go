package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "panels"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleKeyboard, []string{"K"}, "Toggle keyboard", "global"},
	{ActionToggleStacking, []string{"s"}, "Toggle stacking", "global"},

	// Panels
	{ActionShowNote, []string{"t"}, "Push top panel", "panels"},
	{ActionShowSheet, []string{"b"}, "Push bottom sheet", "panels"},
	{ActionShowFull, []string{"f"}, "Push fullscreen sheet", "panels"},
	{ActionShowDialog, []string{"c"}, "Push center dialog", "panels"},
	{ActionShowInput, []string{"i"}, "Open input panel", "panels"},
	{ActionDismiss, []string{"esc"}, "Dismiss newest panel", "panels"},
	{ActionDismissAll, []string{"X"}, "Dismiss all panels", "panels"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
