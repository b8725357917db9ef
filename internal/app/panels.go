// internal/app/panels.go
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/app/popupctl"
	"github.com/llehouerou/popstack/internal/errmsg"
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/ui/action"
	"github.com/llehouerou/popstack/internal/ui/confirm"
	"github.com/llehouerou/popstack/internal/ui/helpbindings"
	"github.com/llehouerou/popstack/internal/ui/popup"
	"github.com/llehouerou/popstack/internal/ui/render"
	"github.com/llehouerou/popstack/internal/ui/styles"
	"github.com/llehouerou/popstack/internal/ui/textinput"
)

// dismissAllContext tags the confirmation asked before closing everything.
const dismissAllContext = "dismiss-all"

var errEmptyInput = errors.New("nothing was typed")

const closeHint = "esc to close"

// nextID returns a creation time strictly after the previous one so panel
// IDs never collide, even when the clock does not move between two keys.
func (m *Model) nextID() time.Time {
	t := m.now()
	if !t.After(m.lastID) {
		t = m.lastID.Add(time.Nanosecond)
	}
	m.lastID = t
	return t
}

func (m *Model) dialog(title, body string) *popup.Dialog {
	d := popup.New(title, body, m.now())
	d.Now = m.now
	d.Footer = closeHint
	return d
}

// showPreset opens content in a panel configured by a named preset.
func (m *Model) showPreset(name string, kind popupctl.Kind, content popup.Popup) tea.Cmd {
	p, err := m.cfg.Preset(name)
	if err != nil {
		m.log.Error("preset unavailable", zap.String("preset", name), zap.Error(err))
		return m.showError(errmsg.FormatWith(errmsg.OpPresetLoad, name, err))
	}

	id, cmd, err := m.Popups.Show(p.Alignment, p.Panel, kind, content, m.nextID())
	if err != nil {
		m.log.Error("panel not shown", zap.String("preset", name), zap.Error(err))
		return m.showError(errmsg.Format(errmsg.OpPanelShow, err))
	}
	m.log.Info("panel shown", zap.Stringer("panel", id), zap.String("preset", name))
	return cmd
}

// showError opens an error dialog in the center stack. It does not go
// through the presets so a broken preset can still be reported.
func (m *Model) showError(text string) tea.Cmd {
	cfg := panel.DefaultConfig()
	cfg.Padding = panel.Insets{Leading: 4, Trailing: 4}

	d := m.dialog("Error", text)
	d.Style.TitleStyle = styles.T().S().Error

	_, cmd, err := m.Popups.Show(panel.AlignCenter, cfg, popupctl.Error, d, m.nextID())
	if err != nil {
		m.log.Error("error panel not shown", zap.Error(err))
	}
	return cmd
}

func (m *Model) showNote() tea.Cmd {
	m.shown++
	return m.showPreset("note", popupctl.Note, m.dialog(
		fmt.Sprintf("Note %d", m.shown),
		"Pinned to the top edge.\nDrag it up to dismiss."))
}

func (m *Model) showSheet() tea.Cmd {
	m.shown++
	return m.showPreset("sheet", popupctl.Sheet, m.dialog(
		fmt.Sprintf("Sheet %d", m.shown),
		"Drag the top edge up to grow it.\nIt snaps to 1.5x, then to the large height.\nDrag it down to shrink or dismiss."))
}

func (m *Model) showFull() tea.Cmd {
	m.shown++
	return m.showPreset("full", popupctl.Full, m.dialog(
		fmt.Sprintf("Fullscreen %d", m.shown),
		"Covers the whole terminal.\nDrag it down to dismiss."))
}

func (m *Model) showDialog() tea.Cmd {
	m.shown++
	return m.showPreset("dialog", popupctl.Dialog, m.dialog(
		fmt.Sprintf("Dialog %d", m.shown),
		"Centered panels do not drag.\nOnly the newest one is shown."))
}

func (m *Model) showInput() tea.Cmd {
	return m.showPreset("input", popupctl.Input, textinput.New("Say something", ""))
}

func (m *Model) showHelp() tea.Cmd {
	return m.showPreset("dialog", popupctl.Help, helpbindings.New("global", "panels"))
}

func (m *Model) confirmDismissAll() tea.Cmd {
	n := m.Popups.Len()
	if n == 0 {
		return nil
	}
	return m.showPreset("dialog", popupctl.Confirm, confirm.New(
		"Close all panels?",
		fmt.Sprintf("%d open panels will be dismissed.", n),
		dismissAllContext))
}

// handleAction reacts to the results reported by interactive panels.
func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	if msg.Action == nil {
		return nil
	}
	m.log.Debug("panel action",
		zap.String("source", msg.Source),
		zap.String("action", msg.Action.ActionType()))

	switch a := msg.Action.(type) {
	case confirm.Result:
		m.Popups.DismissKind(popupctl.Confirm)
		if a.Confirmed && a.Context == dismissAllContext {
			m.log.Info("dismissing all panels", zap.Int("count", m.Popups.Len()))
			m.Popups.DismissAll()
		}

	case textinput.Result:
		m.Popups.DismissKind(popupctl.Input)
		if a.Canceled {
			return nil
		}
		text := strings.TrimSpace(render.Sanitize(a.Text))
		if text == "" {
			return m.showError(errmsg.Format(errmsg.OpInputSubmit, errEmptyInput))
		}
		return m.showPreset("note", popupctl.Note, m.dialog("You typed", text))

	case helpbindings.Close:
		m.Popups.DismissKind(popupctl.Help)
	}
	return nil
}

// modal reports whether content takes every key while it is the newest
// panel.
func modal(c popup.Popup) bool {
	switch c.(type) {
	case *confirm.Model, *textinput.Model, *helpbindings.Model:
		return true
	}
	return false
}
