// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/popstack/internal/app/popupctl"
	"github.com/llehouerou/popstack/internal/config"
	"github.com/llehouerou/popstack/internal/keymap"
	"github.com/llehouerou/popstack/internal/panel"
)

// Model is the root application model: a backdrop with three panel stacks
// drawn over it.
type Model struct {
	Popups *popupctl.Manager

	Width         int
	Height        int
	KeyboardShown bool // toggled by hand, independent of input panels
	Stacking      bool

	cfg  *config.Config
	log  *zap.Logger
	keys *keymap.Resolver
	help help.Model
	drag dragState

	now    func() time.Time
	lastID time.Time
	shown  int
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces the clock used for panel IDs and age footers.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates the application model from configuration.
func New(cfg *config.Config, log *zap.Logger, opts ...Option) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		Popups:   popupctl.New(cfg.GroupConfig, log),
		Stacking: cfg.GroupConfig(panel.AlignBottom).Stacking,
		cfg:      cfg,
		log:      log,
		keys:     keymap.NewResolver(keymap.Bindings),
		help:     help.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}
