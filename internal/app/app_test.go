package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/app/popupctl"
	"github.com/llehouerou/popstack/internal/config"
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/ui/overlay"
	"github.com/llehouerou/popstack/internal/ui/testutil"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(&config.Config{}, zap.NewNop(), WithClock(func() time.Time { return epoch }))
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, cmd = send(m, msg)
	}
	return m, cmd
}

// deliver runs cmd and feeds its message back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())
	return m
}

func TestKeysOpenPanelsInTheirStacks(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, "t", "b", "c")

	assert.Len(t, m.Popups.Panels(panel.AlignTop), 1)
	assert.Len(t, m.Popups.Panels(panel.AlignBottom), 1)
	assert.Len(t, m.Popups.Panels(panel.AlignCenter), 1)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Dialog 3")
	assert.Contains(t, view, "1 top │ 1 bottom │ 1 center")
}

func TestFullscreenCoversWindow(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "f")

	l, ok := m.Popups.Controller(panel.AlignBottom).Snapshot().Active()
	require.True(t, ok)
	assert.Equal(t, overlay.Rect{W: 80, H: 24}, overlay.Bounds(panel.AlignBottom, l, m.Popups.Geometry()))
	assert.Contains(t, testutil.StripANSI(m.View()), "Fullscreen 1")
}

func TestPanelsAreMeasured(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "b")

	p := m.Popups.Panels(panel.AlignBottom)[0]
	h, ok := p.MeasuredHeight()
	require.True(t, ok)
	// title, blank, three lines, blank, footer and the border
	assert.Equal(t, 9.0, h)
}

func TestEscapeDismissesNewest(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "b", "t")

	m, _ = press(m, "esc")

	assert.Empty(t, m.Popups.Panels(panel.AlignTop))
	assert.Len(t, m.Popups.Panels(panel.AlignBottom), 1)
}

func TestDismissAllAsksFirst(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(m, "X")
	assert.Nil(t, cmd, "nothing to confirm without panels")
	assert.Zero(t, m.Popups.Len())

	m, _ = press(m, "t", "b", "X")
	require.Equal(t, 3, m.Popups.Len())
	assert.Contains(t, testutil.StripANSI(m.View()), "Close all panels?")

	m, cmd = press(m, "y")
	m = deliver(t, m, cmd)

	assert.Zero(t, m.Popups.Len())
}

func TestDismissAllCanceled(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "t", "X")

	m, cmd := press(m, "n")
	m = deliver(t, m, cmd)

	assert.Equal(t, 1, m.Popups.Len())
	assert.Len(t, m.Popups.Panels(panel.AlignTop), 1)
}

func TestInputRaisesKeyboardAndPostsNote(t *testing.T) {
	m := newTestModel(t)
	assert.NotContains(t, testutil.StripANSI(m.View()), "q w e r t y u i o p")

	m, _ = press(m, "i")
	assert.True(t, m.Popups.Geometry().KeyboardVisible)
	assert.Contains(t, testutil.StripANSI(m.View()), "q w e r t y u i o p")

	// keys go to the input, not to the panel shortcuts
	m, _ = press(m, "h", "t")
	assert.Empty(t, m.Popups.Panels(panel.AlignTop))

	m, cmd := press(m, "enter")
	m = deliver(t, m, cmd)

	assert.Empty(t, m.Popups.Panels(panel.AlignCenter))
	assert.False(t, m.Popups.Geometry().KeyboardVisible)
	require.Len(t, m.Popups.Panels(panel.AlignTop), 1)
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "You typed")
	assert.Contains(t, view, "ht")
}

func TestEmptyInputShowsError(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "i")

	m, cmd := press(m, "enter")
	m = deliver(t, m, cmd)

	center := m.Popups.Panels(panel.AlignCenter)
	require.Len(t, center, 1)
	assert.Equal(t, string(popupctl.Error), center[0].ID.Kind)
	assert.Contains(t, testutil.StripANSI(m.View()), "Failed to submit input")
}

func TestKeyboardToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, "K")
	assert.True(t, m.KeyboardShown)
	geo := m.Popups.Geometry()
	assert.True(t, geo.KeyboardVisible)
	assert.Equal(t, 8.0, geo.KeyboardHeight)

	m, _ = press(m, "K")
	assert.False(t, m.Popups.Geometry().KeyboardVisible)
}

func TestStackingToggle(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.Stacking)

	m, _ = press(m, "s")

	assert.False(t, m.Stacking)
	assert.False(t, m.Popups.Controller(panel.AlignBottom).Group().Stacking)
}

func TestHelpPanel(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, "?")
	require.Len(t, m.Popups.Panels(panel.AlignCenter), 1)
	assert.Contains(t, testutil.StripANSI(m.View()), "Global")

	m, cmd := press(m, "esc")
	m = deliver(t, m, cmd)
	assert.Zero(t, m.Popups.Len())
}

func TestMouseDragDismissesSheet(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "b")

	snap := m.Popups.Controller(panel.AlignBottom).Snapshot()
	l, ok := snap.Active()
	require.True(t, ok)
	r := overlay.Bounds(panel.AlignBottom, l, m.Popups.Geometry())
	x := r.X + r.W/2

	m, _ = send(m, tea.MouseMsg{X: x, Y: r.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.drag.active)

	m, _ = send(m, tea.MouseMsg{X: x, Y: r.Y + 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.True(t, m.Popups.Controller(panel.AlignBottom).Dragging())
	assert.Contains(t, testutil.StripANSI(m.View()), "dragging")

	m, _ = send(m, tea.MouseMsg{X: x, Y: r.Y + r.H, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.False(t, m.drag.active)
	assert.Empty(t, m.Popups.Panels(panel.AlignBottom))
}

func TestMouseShortDragKeepsSheet(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "b")

	l, _ := m.Popups.Controller(panel.AlignBottom).Snapshot().Active()
	r := overlay.Bounds(panel.AlignBottom, l, m.Popups.Geometry())

	m, _ = send(m, tea.MouseMsg{X: r.X + 1, Y: r.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, tea.MouseMsg{X: r.X + 1, Y: r.Y + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Len(t, m.Popups.Panels(panel.AlignBottom), 1)
}

func TestMousePressOutsidePanelsIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "t")

	m, _ = send(m, tea.MouseMsg{X: 40, Y: 22, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.drag.active)
}

func TestCenterPanelBlocksDrag(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "c")

	l, _ := m.Popups.Controller(panel.AlignCenter).Snapshot().Active()
	r := overlay.Bounds(panel.AlignCenter, l, m.Popups.Geometry())

	m, _ = send(m, tea.MouseMsg{X: r.X + 1, Y: r.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.drag.active)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		_, cmd := press(m, k)
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestTickReschedules(t *testing.T) {
	m := newTestModel(t)
	_, cmd := send(m, TickMsg(epoch))
	assert.NotNil(t, cmd)
}

func TestPanelIDsStayUnique(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, "t", "t", "t")

	ps := m.Popups.Panels(panel.AlignTop)
	require.Len(t, ps, 3)
	assert.True(t, ps[1].ID.Created.After(ps[0].ID.Created))
	assert.True(t, ps[2].ID.Created.After(ps[1].ID.Created))
}

func TestViewEmptyBeforeSize(t *testing.T) {
	m := New(&config.Config{}, nil)
	assert.Empty(t, m.View())
}

func TestViewFillsWindow(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "b", "b")

	assert.Equal(t, 24, strings.Count(m.View(), "\n")+1)
}
