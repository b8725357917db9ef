// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/app/handler"
	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/keymap"
	"github.com/llehouerou/popstack/internal/ui/action"
	"github.com/llehouerou/popstack/internal/ui/headerbar"
	"github.com/llehouerou/popstack/internal/ui/layout"
)

// Update handles messages and returns updated model and commands. Panel
// geometry and content heights are brought up to date after every message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case TickMsg:
		return tickCmd()

	case tea.KeyMsg:
		_, cmd := handler.Chain(msg, m.handleQuitKey, m.handleModalKey, m.handleActionKey)
		return cmd

	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil

	case action.Msg:
		return m.handleAction(msg)
	}

	// Cursor blinks and other content messages.
	return m.Popups.Broadcast(msg)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	m.Width = msg.Width
	m.Height = msg.Height
	m.help.Width = msg.Width
	m.log.Debug("window resized", zap.Int("width", msg.Width), zap.Int("height", msg.Height))
	return nil
}

func (m *Model) handleQuitKey(msg tea.KeyMsg) handler.Result {
	if msg.String() == "ctrl+c" {
		return handler.Handled(tea.Quit)
	}
	return handler.NotHandled
}

// handleModalKey hands every key to an interactive panel while it is the
// newest one.
func (m *Model) handleModalKey(msg tea.KeyMsg) handler.Result {
	_, c, ok := m.Popups.Latest()
	if !ok || !modal(c) {
		return handler.NotHandled
	}
	_, cmd := m.Popups.HandleKey(msg)
	return handler.Handled(cmd)
}

func (m *Model) handleActionKey(msg tea.KeyMsg) handler.Result {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		return handler.Handled(m.showHelp())
	case keymap.ActionShowNote:
		return handler.Handled(m.showNote())
	case keymap.ActionShowSheet:
		return handler.Handled(m.showSheet())
	case keymap.ActionShowFull:
		return handler.Handled(m.showFull())
	case keymap.ActionShowDialog:
		return handler.Handled(m.showDialog())
	case keymap.ActionShowInput:
		return handler.Handled(m.showInput())
	case keymap.ActionDismiss:
		if !m.drag.active {
			m.Popups.DismissLatest()
		}
		return handler.HandledNoCmd
	case keymap.ActionDismissAll:
		return handler.Handled(m.confirmDismissAll())
	case keymap.ActionToggleKeyboard:
		m.KeyboardShown = !m.KeyboardShown
		return handler.HandledNoCmd
	case keymap.ActionToggleStacking:
		m.Stacking = !m.Stacking
		m.Popups.SetStacking(m.Stacking)
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m Model) chrome() layout.ChromeOpts {
	return layout.ChromeOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: layout.FooterHeight,
		Extra:        m.cfg.ExtraSafeArea(),
	}
}

func (m Model) keyboardVisible() bool {
	return m.KeyboardShown || m.Popups.WantsKeyboard()
}

func (m Model) keyboardHeight() int {
	return layout.KeyboardHeight(m.Height, m.cfg.KeyboardHeight())
}

// refresh pushes the window and keyboard state to the stacks and measures
// the panel contents against it.
func (m *Model) refresh() {
	if m.Width <= 0 || m.Height <= 0 {
		return
	}
	geo := geometry.Context{
		ViewportWidth:  float64(m.Width),
		ViewportHeight: float64(m.Height),
		SafeArea:       layout.SafeArea(m.chrome()),
	}
	m.Popups.SetGeometry(geo.WithKeyboard(m.keyboardVisible(), float64(m.keyboardHeight())))
	m.Popups.Measure()
}
