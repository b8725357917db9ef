// Package popupctl owns the panel stacks of the app and the content shown
// in each panel.
package popupctl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/geometry"
	"github.com/llehouerou/popstack/internal/panel"
	"github.com/llehouerou/popstack/internal/stack"
	"github.com/llehouerou/popstack/internal/ui"
	"github.com/llehouerou/popstack/internal/ui/overlay"
	"github.com/llehouerou/popstack/internal/ui/popup"
)

// ErrDuplicateID is returned by Show when a panel with the same ID is
// already open.
var ErrDuplicateID = errors.New("panel already shown")

// Compile-time check that Manager owns the stacks.
var _ stack.Owner = (*Manager)(nil)

// Manager is the authoritative collection of open panels. Controllers
// request changes through the stack.Owner methods and get the result back
// through SetPanels.
type Manager struct {
	log     *zap.Logger
	geo     geometry.Context
	panels  map[panel.Alignment][]panel.Panel
	content map[panel.ID]popup.Popup
	ctrls   map[panel.Alignment]*stack.Controller
}

// New creates a manager with one empty stack per alignment. groups returns
// the group constants of an alignment.
func New(groups func(panel.Alignment) panel.GroupConfig, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		log:     log,
		panels:  make(map[panel.Alignment][]panel.Panel),
		content: make(map[panel.ID]popup.Popup),
		ctrls:   make(map[panel.Alignment]*stack.Controller),
	}
	for _, a := range RenderOrder {
		m.ctrls[a] = stack.New(a, groups(a), m, stack.WithLogger(log))
	}
	return m
}

// Controller returns the stack controller of an alignment.
func (m *Manager) Controller(a panel.Alignment) *stack.Controller {
	return m.ctrls[a]
}

// SetGeometry updates the layout environment of every stack.
func (m *Manager) SetGeometry(geo geometry.Context) {
	m.geo = geo
	for _, c := range m.ctrls {
		c.SetGeometry(geo)
	}
}

// Geometry returns the current layout environment.
func (m *Manager) Geometry() geometry.Context {
	return m.geo
}

// SetStacking turns peeking stacked panels on or off for the edge stacks.
func (m *Manager) SetStacking(on bool) {
	for _, a := range RenderOrder {
		if !a.Stacks() {
			continue
		}
		c := m.ctrls[a]
		g := c.Group()
		g.Stacking = on
		c.SetGroup(g)
	}
}

// Show pushes a panel onto the stack of an alignment and returns the
// content's init command.
func (m *Manager) Show(a panel.Alignment, cfg panel.Config, kind Kind, content popup.Popup, now time.Time) (panel.ID, tea.Cmd, error) {
	id := panel.NewID(string(kind), now)
	if _, ok := m.content[id]; ok {
		return panel.ID{}, nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	m.panels[a] = append(m.panels[a], panel.New(id, cfg))
	m.content[id] = content
	m.sync(a)

	m.log.Debug("panel shown", zap.Stringer("panel", id), zap.Stringer("stack", a))
	return id, content.Init(), nil
}

// UpdatePanel implements stack.Owner.
func (m *Manager) UpdatePanel(id panel.ID, mutate func(panel.Panel) panel.Panel) {
	a, i, ok := m.find(id)
	if !ok {
		return
	}
	m.panels[a][i] = mutate(m.panels[a][i])
	m.sync(a)
}

// DismissPanel implements stack.Owner.
func (m *Manager) DismissPanel(id panel.ID) {
	m.Dismiss(id)
}

// Dismiss removes a panel and its content. It reports whether the panel
// was open.
func (m *Manager) Dismiss(id panel.ID) bool {
	a, i, ok := m.find(id)
	if !ok {
		return false
	}
	m.panels[a] = append(m.panels[a][:i:i], m.panels[a][i+1:]...)
	delete(m.content, id)
	m.sync(a)

	m.log.Debug("panel dismissed", zap.Stringer("panel", id), zap.Stringer("stack", a))
	return true
}

// DismissTop removes the active panel of an alignment.
func (m *Manager) DismissTop(a panel.Alignment) bool {
	ps := m.panels[a]
	if len(ps) == 0 {
		return false
	}
	return m.Dismiss(ps[len(ps)-1].ID)
}

// DismissLatest removes the most recently shown panel of any stack.
func (m *Manager) DismissLatest() bool {
	id, _, ok := m.Latest()
	if !ok {
		return false
	}
	return m.Dismiss(id)
}

// DismissKind removes the newest panel of a kind.
func (m *Manager) DismissKind(kind Kind) bool {
	var (
		newest panel.ID
		found  bool
	)
	for _, a := range RenderOrder {
		for _, p := range m.panels[a] {
			if p.ID.Kind == string(kind) && (!found || p.ID.Created.After(newest.Created)) {
				newest, found = p.ID, true
			}
		}
	}
	return found && m.Dismiss(newest)
}

// DismissAll closes every panel.
func (m *Manager) DismissAll() {
	for _, a := range RenderOrder {
		for len(m.panels[a]) > 0 {
			m.DismissTop(a)
		}
	}
}

// Panels returns a copy of the stack of an alignment, bottom to top.
func (m *Manager) Panels(a panel.Alignment) []panel.Panel {
	return append([]panel.Panel(nil), m.panels[a]...)
}

// Len returns the number of open panels.
func (m *Manager) Len() int {
	return len(m.content)
}

// AlignmentOf returns the stack a panel is in.
func (m *Manager) AlignmentOf(id panel.ID) (panel.Alignment, bool) {
	a, _, ok := m.find(id)
	return a, ok
}

// Content returns the content shown in a panel.
func (m *Manager) Content(id panel.ID) (popup.Popup, bool) {
	c, ok := m.content[id]
	return c, ok
}

// Latest returns the most recently shown panel, which receives key input.
func (m *Manager) Latest() (panel.ID, popup.Popup, bool) {
	var (
		latest panel.ID
		found  bool
	)
	for _, a := range RenderOrder {
		ps := m.panels[a]
		if len(ps) == 0 {
			continue
		}
		id := ps[len(ps)-1].ID
		if !found || id.Created.After(latest.Created) {
			latest, found = id, true
		}
	}
	if !found {
		return panel.ID{}, nil, false
	}
	return latest, m.content[latest], true
}

// WantsKeyboard reports whether any open panel asks for the keyboard.
func (m *Manager) WantsKeyboard() bool {
	for _, c := range m.content {
		if popup.WantsKeyboard(c) {
			return true
		}
	}
	return false
}

// HandleKey routes a key to the content of the latest panel.
// Returns (handled, cmd) where handled is true if a panel received the key.
func (m *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	id, c, ok := m.Latest()
	if !ok {
		return false, nil
	}
	updated, cmd := c.Update(msg)
	m.content[id] = updated
	return true, cmd
}

// Broadcast forwards a non-key message to every panel's content.
func (m *Manager) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for id, c := range m.content {
		updated, cmd := c.Update(msg)
		m.content[id] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Snapshots returns the layout of every stack in render order.
func (m *Manager) Snapshots() []stack.Snapshot {
	snaps := make([]stack.Snapshot, 0, len(RenderOrder))
	for _, a := range RenderOrder {
		snaps = append(snaps, m.ctrls[a].Snapshot())
	}
	return snaps
}

// Measure sizes every panel's content to the room its frame offers and
// reports the resulting heights. A frame height is the content's rendered
// lines plus the border and the body padding of the current layout. The
// loop settles because reporting an unchanged height is a no-op.
func (m *Manager) Measure() {
	const maxPasses = 3
	for range maxPasses {
		changed := false
		for _, a := range RenderOrder {
			if m.measureStack(a) {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func (m *Manager) measureStack(a panel.Alignment) bool {
	ctrl := m.ctrls[a]
	snap := ctrl.Snapshot()
	changed := false

	for _, l := range snap.Panels {
		c, ok := m.content[l.ID]
		if !ok {
			continue
		}

		sized := l
		if !sized.HasHeight {
			sized.Height = m.geo.ViewportHeight
		}
		r := overlay.Bounds(a, sized, m.geo)
		w, _ := overlay.ContentSize(l, r)
		c.SetSize(w, m.contentRoom())

		lines := strings.Count(c.View(), "\n") + 1
		h := float64(lines+ui.BorderHeight) + l.Body.Top + l.Body.Bottom

		before, had := m.measured(a, l.ID)
		ctrl.ReportHeight(l.ID, h)
		if !had || before != h {
			changed = true
		}
	}
	return changed
}

// contentRoom is the tallest content a panel can show inside the safe area.
func (m *Manager) contentRoom() int {
	room := m.geo.ViewportHeight - m.geo.SafeArea.Top - m.geo.SafeArea.Bottom
	return max(int(room)-ui.BorderHeight, 0)
}

func (m *Manager) measured(a panel.Alignment, id panel.ID) (float64, bool) {
	for _, p := range m.panels[a] {
		if p.ID == id {
			return p.MeasuredHeight()
		}
	}
	return 0, false
}

func (m *Manager) find(id panel.ID) (panel.Alignment, int, bool) {
	for _, a := range RenderOrder {
		for i, p := range m.panels[a] {
			if p.ID == id {
				return a, i, true
			}
		}
	}
	return 0, 0, false
}

func (m *Manager) sync(a panel.Alignment) {
	m.ctrls[a].SetPanels(m.panels[a])
}
