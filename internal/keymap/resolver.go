package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Compile-time check that Resolver can drive the help footer.
var _ help.KeyMap = (*Resolver)(nil)

// shortHelp lists the actions shown in the one-line footer.
var shortHelp = []Action{
	ActionShowNote, ActionShowSheet, ActionShowDialog, ActionShowInput,
	ActionDismiss, ActionHelp, ActionQuit,
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action      // key -> action
	byAction map[Action][]string    // action -> keys (for help/documentation)
	help     map[Action]key.Binding // action -> footer binding
	order    []Action
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		help:     make(map[Action]key.Binding),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		if _, seen := r.byAction[b.Action]; !seen {
			r.order = append(r.order, b.Action)
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		keys = dedupe(keys)
		r.byAction[action] = keys
		r.help[action] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), shortDescription(bindings, action)),
		)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(k string) Action {
	return r.bindings[k]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// ShortHelp implements help.KeyMap.
func (r *Resolver) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, a := range shortHelp {
		if b, ok := r.help[a]; ok {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp implements help.KeyMap: one column per action, in binding order.
func (r *Resolver) FullHelp() [][]key.Binding {
	var col []key.Binding
	for _, a := range r.order {
		col = append(col, r.help[a])
	}
	return [][]key.Binding{col}
}

// shortLabels are the footer texts of the actions in shortHelp.
var shortLabels = map[Action]string{
	ActionShowNote:   "top",
	ActionShowSheet:  "sheet",
	ActionShowDialog: "dialog",
	ActionShowInput:  "input",
	ActionDismiss:    "dismiss",
	ActionHelp:       "help",
	ActionQuit:       "quit",
}

func shortDescription(bindings []Binding, action Action) string {
	if label, ok := shortLabels[action]; ok {
		return label
	}
	for _, b := range bindings {
		if b.Action == action {
			return b.Description
		}
	}
	return string(action)
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
