package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/popstack/internal/ui/action"
	"github.com/llehouerou/popstack/internal/ui/popup"
)

// PopupHarness drives panel content the way the app does: it runs Init,
// feeds messages through Update and records the commands that come back.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p and keeps its init command, if any.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the current content for type assertions.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg delivers msg and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey types key as runes.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key such as backspace.
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *PopupHarness) SendEnter() tea.Cmd  { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }
func (h *PopupHarness) SendUp() tea.Cmd     { return h.SendSpecialKey(tea.KeyUp) }
func (h *PopupHarness) SendDown() tea.Cmd   { return h.SendSpecialKey(tea.KeyDown) }
func (h *PopupHarness) SendTab() tea.Cmd    { return h.SendSpecialKey(tea.KeyTab) }

// Commands returns every command collected since creation or the last
// ClearCommands.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// LastAction runs the most recent command and reports the action it
// produced. ok is false when there is no command or it yields something
// other than an action.Msg.
func (h *PopupHarness) LastAction() (action.Msg, bool) {
	msg, ok := ExecuteCmd(h.LastCommand()).(action.Msg)
	return msg, ok
}

// ExecuteCmd runs cmd and returns its message. A nil command yields nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// AssertViewContains returns an error message if the view, stripped of
// styling, does not contain substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains is the converse of AssertViewContains.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
