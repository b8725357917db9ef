//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"github.com/llehouerou/popstack/internal/panel"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/logs/popstack.log", filepath.Join(home, "logs", "popstack.log")},
		{"absolute path unchanged", "/var/log/popstack.log", "/var/log/popstack.log"},
		{"relative path unchanged", "popstack.log", "popstack.log"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	expectedFirst := filepath.Join(xdg.ConfigHome, "popstack", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}

	// Last path should be local config.toml
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func TestLoad_MissingFiles(t *testing.T) {
	cfg, err := load([]string{filepath.Join(t.TempDir(), "nope.toml")})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.LogLevel() != "info" {
		t.Errorf("LogLevel() = %q, want %q", cfg.LogLevel(), "info")
	}
	if cfg.GroupConfig(panel.AlignBottom) != DefaultGroupConfig() {
		t.Error("GroupConfig() should return defaults for an empty config")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "DEBUG"
path = "~/popstack.log"

[bottom]
stack_offset = 2
dismiss_threshold = 0.5
stacking = false

[keyboard]
height = 12

[safe_area]
leading = 1
trailing = 1
`)

	cfg, err := load([]string{path})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.LogLevel() != "debug" {
		t.Errorf("LogLevel() = %q, want %q", cfg.LogLevel(), "debug")
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "popstack.log"); cfg.LogPath() != want {
		t.Errorf("LogPath() = %q, want %q", cfg.LogPath(), want)
	}

	g := cfg.GroupConfig(panel.AlignBottom)
	if g.StackOffset != 2 || g.DismissThreshold != 0.5 || g.Stacking {
		t.Errorf("GroupConfig(bottom) = %+v", g)
	}
	if cfg.GroupConfig(panel.AlignTop) != DefaultGroupConfig() {
		t.Error("top group should keep defaults")
	}

	if cfg.KeyboardHeight() != 12 {
		t.Errorf("KeyboardHeight() = %d, want 12", cfg.KeyboardHeight())
	}
	if got := cfg.ExtraSafeArea(); got != (panel.Insets{Leading: 1, Trailing: 1}) {
		t.Errorf("ExtraSafeArea() = %+v", got)
	}
}

func TestLoad_LaterFileWins(t *testing.T) {
	first := writeConfig(t, "[keyboard]\nheight = 5\n[log]\nlevel = \"warn\"\n")
	second := writeConfig(t, "[keyboard]\nheight = 9\n")

	cfg, err := load([]string{first, second})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.KeyboardHeight() != 9 {
		t.Errorf("KeyboardHeight() = %d, want 9", cfg.KeyboardHeight())
	}
	if cfg.LogLevel() != "warn" {
		t.Errorf("LogLevel() = %q, want %q", cfg.LogLevel(), "warn")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfig(t, "invalid = [[[")

	if _, err := load([]string{path}); err == nil {
		t.Error("load() expected error for invalid TOML, got nil")
	}
}

func TestLoad_InvalidPreset(t *testing.T) {
	path := writeConfig(t, `
[presets.tall]
detents = ["huge"]
`)

	if _, err := load([]string{path}); err == nil {
		t.Error("load() expected error for invalid detent, got nil")
	}
}

func TestGroupConfig_InvalidValuesUseDefaults(t *testing.T) {
	cfg := Config{Center: GroupConfig{
		StackOffset:      -3,
		StackScaleFactor: 2,
		DismissThreshold: 1.5,
		MaxVisibleDepth:  -1,
	}}

	if got := cfg.GroupConfig(panel.AlignCenter); got != DefaultGroupConfig() {
		t.Errorf("GroupConfig() = %+v, want defaults", got)
	}
}

func TestKeyboardHeight_Default(t *testing.T) {
	var cfg Config
	if cfg.KeyboardHeight() != 8 {
		t.Errorf("KeyboardHeight() = %d, want 8", cfg.KeyboardHeight())
	}
}

func TestPreset_Builtins(t *testing.T) {
	var cfg Config

	for _, name := range PresetNames() {
		if _, err := cfg.Preset(name); err != nil {
			t.Errorf("Preset(%q) error = %v", name, err)
		}
	}

	sheet, _ := cfg.Preset("sheet")
	if sheet.Alignment != panel.AlignBottom {
		t.Errorf("sheet alignment = %v, want bottom", sheet.Alignment)
	}
	want := []panel.Detent{panel.Fraction(1.5), panel.LargeDetent()}
	if len(sheet.Panel.Detents) != len(want) {
		t.Fatalf("sheet detents = %v, want %v", sheet.Panel.Detents, want)
	}
	for i := range want {
		if sheet.Panel.Detents[i] != want[i] {
			t.Errorf("sheet detent %d = %v, want %v", i, sheet.Panel.Detents[i], want[i])
		}
	}
	if !sheet.Panel.DragEnabled || sheet.Panel.CornerRadius != 1 {
		t.Errorf("sheet should keep panel defaults, got %+v", sheet.Panel)
	}

	full, _ := cfg.Preset("full")
	if full.Panel.HeightMode != panel.HeightFullscreen {
		t.Errorf("full height mode = %v, want fullscreen", full.Panel.HeightMode)
	}

	if _, err := cfg.Preset("missing"); err == nil {
		t.Error("Preset(missing) expected error")
	}
}

func TestPreset_FileOverridesBuiltin(t *testing.T) {
	path := writeConfig(t, `
[presets.note]
alignment = "bottom"
corner_radius = 0
drag_enabled = false
ignore_safe_area = ["bottom", "leading"]
`)

	cfg, err := load([]string{path})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	p, err := cfg.Preset("note")
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if p.Alignment != panel.AlignBottom {
		t.Errorf("Alignment = %v, want bottom", p.Alignment)
	}
	if p.Panel.CornerRadius != 0 || p.Panel.DragEnabled {
		t.Errorf("Panel = %+v, want square corners and no drag", p.Panel)
	}
	if p.Panel.IgnoredSafeArea != panel.Edges(panel.EdgeBottom, panel.EdgeLeading) {
		t.Errorf("IgnoredSafeArea = %b", p.Panel.IgnoredSafeArea)
	}
}

func TestParseDetent(t *testing.T) {
	tests := []struct {
		input   string
		want    panel.Detent
		wantErr bool
	}{
		{"large", panel.LargeDetent(), false},
		{" Fullscreen ", panel.FullscreenDetent(), false},
		{"1.5x", panel.Fraction(1.5), false},
		{"12", panel.Fixed(12), false},
		{"0", panel.Detent{}, true},
		{"-2x", panel.Detent{}, true},
		{"x", panel.Detent{}, true},
		{"tall", panel.Detent{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDetent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDetent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDetent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		input   string
		want    panel.Alignment
		wantErr bool
	}{
		{"", panel.AlignBottom, false},
		{"Top", panel.AlignTop, false},
		{"center", panel.AlignCenter, false},
		{"left", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAlignment(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlignment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseEdges(t *testing.T) {
	set, err := ParseEdges([]string{"all"})
	if err != nil || set != panel.AllEdges {
		t.Errorf("ParseEdges(all) = %b, %v", set, err)
	}
	if _, err := ParseEdges([]string{"middle"}); err == nil {
		t.Error("ParseEdges(middle) expected error")
	}
}
