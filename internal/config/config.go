package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/popstack/internal/panel"
)

// AppName names the config, state and log directories.
const AppName = "popstack"

type Config struct {
	Log LogConfig `koanf:"log"`

	// Per-alignment group constants, in terminal rows and columns
	Top    GroupConfig `koanf:"top"`
	Bottom GroupConfig `koanf:"bottom"`
	Center GroupConfig `koanf:"center"`

	// Extra margins kept free on top of the header and footer rows
	SafeArea InsetsConfig `koanf:"safe_area"`

	// Simulated on-screen keyboard
	Keyboard KeyboardConfig `koanf:"keyboard"`

	// Named panel configurations, merged over the built-in ones
	Presets map[string]PresetConfig `koanf:"presets"`
}

// LogConfig selects where debug logs go.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	Path  string `koanf:"path"`  // default: $XDG_STATE_HOME/popstack/popstack.log
}

// GroupConfig mirrors panel.GroupConfig. Zero values take the defaults.
type GroupConfig struct {
	StackOffset        float64 `koanf:"stack_offset"`
	StackScaleFactor   float64 `koanf:"stack_scale_factor"`
	StackOverlayFactor float64 `koanf:"stack_overlay_factor"`
	MaxOverlayFactor   float64 `koanf:"max_overlay_factor"`
	DismissThreshold   float64 `koanf:"dismiss_threshold"`
	DragOvershoot      float64 `koanf:"drag_overshoot"`
	Stacking           *bool   `koanf:"stacking"`          // default: true
	MaxVisibleDepth    int     `koanf:"max_visible_depth"` // default: 3
}

// InsetsConfig holds one value per edge.
type InsetsConfig struct {
	Top      float64 `koanf:"top"`
	Bottom   float64 `koanf:"bottom"`
	Leading  float64 `koanf:"leading"`
	Trailing float64 `koanf:"trailing"`
}

// KeyboardConfig holds the simulated keyboard settings.
type KeyboardConfig struct {
	Height int `koanf:"height"` // rows (default: 8)
}

// PresetConfig is the file form of a panel.Config.
type PresetConfig struct {
	Alignment       string       `koanf:"alignment"`   // "top", "bottom", "center"
	HeightMode      string       `koanf:"height_mode"` // "auto", "large", "fullscreen"
	Padding         InsetsConfig `koanf:"padding"`
	CornerRadius    *float64     `koanf:"corner_radius"` // default: 1
	IgnoredSafeArea []string     `koanf:"ignore_safe_area"`
	DragEnabled     *bool        `koanf:"drag_enabled"` // default: true
	Detents         []string     `koanf:"detents"`      // "12", "1.5x", "large", "fullscreen"
	KeyboardGap     float64      `koanf:"keyboard_gap"`
}

// Preset is a resolved panel configuration with the stack it opens in.
type Preset struct {
	Name      string
	Alignment panel.Alignment
	Panel     panel.Config
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}

	// Validate presets up front so a bad detent fails at startup
	for name := range cfg.Presets {
		if _, err := cfg.Preset(name); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/popstack/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogPath returns the log file path with the default applied.
func (c *Config) LogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// LogLevel returns the log level name with the default applied.
func (c *Config) LogLevel() string {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		return strings.ToLower(c.Log.Level)
	}
	return "info"
}

// DefaultGroupConfig returns the group constants scaled for a terminal,
// where one unit is one row.
func DefaultGroupConfig() panel.GroupConfig {
	g := panel.DefaultGroupConfig()
	g.StackOffset = 1
	g.DragOvershoot = 2
	return g
}

// GroupConfig returns the group constants for an alignment with defaults
// applied.
func (c *Config) GroupConfig(a panel.Alignment) panel.GroupConfig {
	var src GroupConfig
	switch a {
	case panel.AlignTop:
		src = c.Top
	case panel.AlignBottom:
		src = c.Bottom
	case panel.AlignCenter:
		src = c.Center
	}

	g := DefaultGroupConfig()
	if src.StackOffset > 0 {
		g.StackOffset = src.StackOffset
	}
	if src.StackScaleFactor > 0 && src.StackScaleFactor < 1 {
		g.StackScaleFactor = src.StackScaleFactor
	}
	if src.StackOverlayFactor > 0 && src.StackOverlayFactor <= 1 {
		g.StackOverlayFactor = src.StackOverlayFactor
	}
	if src.MaxOverlayFactor > 0 && src.MaxOverlayFactor <= 1 {
		g.MaxOverlayFactor = src.MaxOverlayFactor
	}
	if src.DismissThreshold > 0 && src.DismissThreshold <= 1 {
		g.DismissThreshold = src.DismissThreshold
	}
	if src.DragOvershoot > 0 {
		g.DragOvershoot = src.DragOvershoot
	}
	if src.Stacking != nil {
		g.Stacking = *src.Stacking
	}
	if src.MaxVisibleDepth > 0 {
		g.MaxVisibleDepth = src.MaxVisibleDepth
	}
	return g
}

// ExtraSafeArea returns the configured margins as insets.
func (c *Config) ExtraSafeArea() panel.Insets {
	return c.SafeArea.insets()
}

// KeyboardHeight returns the simulated keyboard height with the default
// applied.
func (c *Config) KeyboardHeight() int {
	if c.Keyboard.Height <= 0 {
		return 8
	}
	return c.Keyboard.Height
}

func (in InsetsConfig) insets() panel.Insets {
	return panel.Insets{
		Top:      max(in.Top, 0),
		Bottom:   max(in.Bottom, 0),
		Leading:  max(in.Leading, 0),
		Trailing: max(in.Trailing, 0),
	}
}

// builtinPresets are the panels the demo keys open.
var builtinPresets = map[string]PresetConfig{
	"note": {
		Alignment: "top",
		Padding:   InsetsConfig{Top: 1, Leading: 2, Trailing: 2},
	},
	"sheet": {
		Alignment: "bottom",
		Padding:   InsetsConfig{Bottom: 1, Leading: 2, Trailing: 2},
		Detents:   []string{"1.5x", "large"},
	},
	"full": {
		Alignment:  "bottom",
		HeightMode: "fullscreen",
	},
	"dialog": {
		Alignment: "center",
		Padding:   InsetsConfig{Leading: 4, Trailing: 4},
	},
	"input": {
		Alignment:   "center",
		Padding:     InsetsConfig{Leading: 4, Trailing: 4},
		KeyboardGap: 1,
	},
}

// PresetNames returns the names of the built-in presets.
func PresetNames() []string {
	return []string{"note", "sheet", "full", "dialog", "input"}
}

// Preset resolves a named panel configuration. Presets from the config file
// replace the built-in ones of the same name.
func (c *Config) Preset(name string) (Preset, error) {
	src, ok := c.Presets[name]
	if !ok {
		src, ok = builtinPresets[name]
	}
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}

	p := Preset{Name: name, Panel: panel.DefaultConfig()}

	a, err := ParseAlignment(src.Alignment)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	p.Alignment = a

	p.Panel.HeightMode = panel.ParseHeightMode(src.HeightMode)
	p.Panel.Padding = src.Padding.insets()
	p.Panel.KeyboardGap = max(src.KeyboardGap, 0)
	if src.CornerRadius != nil {
		p.Panel.CornerRadius = *src.CornerRadius
	}
	if src.DragEnabled != nil {
		p.Panel.DragEnabled = *src.DragEnabled
	}

	edges, err := ParseEdges(src.IgnoredSafeArea)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	p.Panel.IgnoredSafeArea = edges

	for _, s := range src.Detents {
		d, err := ParseDetent(s)
		if err != nil {
			return Preset{}, fmt.Errorf("preset %q: %w", name, err)
		}
		p.Panel.Detents = append(p.Panel.Detents, d)
	}

	return p, nil
}

// ParseAlignment maps a configuration string to an alignment. An empty
// string means bottom.
func ParseAlignment(s string) (panel.Alignment, error) {
	switch strings.ToLower(s) {
	case "", "bottom":
		return panel.AlignBottom, nil
	case "top":
		return panel.AlignTop, nil
	case "center":
		return panel.AlignCenter, nil
	}
	return 0, fmt.Errorf("invalid alignment %q", s)
}

// ParseDetent parses "large", "fullscreen", a multiple of the panel's
// height such as "1.5x", or an absolute number of rows.
func ParseDetent(s string) (panel.Detent, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "large":
		return panel.LargeDetent(), nil
	case "fullscreen":
		return panel.FullscreenDetent(), nil
	}

	if f, ok := strings.CutSuffix(s, "x"); ok {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v <= 0 {
			return panel.Detent{}, fmt.Errorf("invalid detent %q", s)
		}
		return panel.Fraction(v), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return panel.Detent{}, fmt.Errorf("invalid detent %q", s)
	}
	return panel.Fixed(v), nil
}

// ParseEdges parses a list of edge names. "all" selects every edge.
func ParseEdges(names []string) (panel.EdgeSet, error) {
	var set panel.EdgeSet
	for _, n := range names {
		switch strings.ToLower(n) {
		case "top":
			set |= panel.Edges(panel.EdgeTop)
		case "bottom":
			set |= panel.Edges(panel.EdgeBottom)
		case "leading":
			set |= panel.Edges(panel.EdgeLeading)
		case "trailing":
			set |= panel.Edges(panel.EdgeTrailing)
		case "all":
			set = panel.AllEdges
		default:
			return 0, fmt.Errorf("invalid edge %q", n)
		}
	}
	return set, nil
}
