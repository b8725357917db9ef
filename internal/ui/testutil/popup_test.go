package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/popstack/internal/ui/action"
	"github.com/llehouerou/popstack/internal/ui/popup"
)

type typed string

func (typed) ActionType() string { return "typed" }

// echoPopup records keys and emits an action on enter.
type echoPopup struct {
	typed         string
	width, height int
	initCmd       tea.Cmd
}

func (p *echoPopup) Init() tea.Cmd { return p.initCmd }

func (p *echoPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.Type {
	case tea.KeyEnter:
		text := typed(p.typed)
		return p, func() tea.Msg { return action.Msg{Source: "echo", Action: text} }
	case tea.KeyRunes:
		p.typed += string(key.Runes)
	case tea.KeyBackspace:
		if p.typed != "" {
			p.typed = p.typed[:len(p.typed)-1]
		}
	}
	return p, nil
}

func (p *echoPopup) View() string {
	if p.width == 0 {
		return ""
	}
	return "> " + p.typed
}

func (p *echoPopup) SetSize(width, height int) {
	p.width, p.height = width, height
}

func TestPopupHarness_InitCommandKept(t *testing.T) {
	h := NewPopupHarness(&echoPopup{initCmd: func() tea.Msg { return "ready" }})
	require.Len(t, h.Commands(), 1)
	assert.Equal(t, "ready", ExecuteCmd(h.LastCommand()))

	h.ClearCommands()
	assert.Nil(t, h.LastCommand())
}

func TestPopupHarness_KeysAndAction(t *testing.T) {
	h := NewPopupHarness(&echoPopup{})
	h.SetSize(20, 3)

	h.SendKey("ab")
	h.SendKey("c")
	h.SendSpecialKey(tea.KeyBackspace)
	assert.Empty(t, h.Commands())
	assert.Empty(t, h.AssertViewContains("> ab"))

	h.SendEnter()
	msg, ok := h.LastAction()
	require.True(t, ok)
	assert.Equal(t, "echo", msg.Source)
	assert.Equal(t, typed("ab"), msg.Action)
}

func TestPopupHarness_LastActionWithoutCommand(t *testing.T) {
	h := NewPopupHarness(&echoPopup{})
	_, ok := h.LastAction()
	assert.False(t, ok)
	assert.Nil(t, ExecuteCmd(nil))
}

func TestPopupHarness_SetSize(t *testing.T) {
	h := NewPopupHarness(&echoPopup{})
	assert.Empty(t, h.View())

	h.SetSize(30, 4)
	p := h.Popup().(*echoPopup)
	assert.Equal(t, 30, p.width)
	assert.Equal(t, 4, p.height)
	assert.NotEmpty(t, h.AssertViewNotContains("> "))
}
