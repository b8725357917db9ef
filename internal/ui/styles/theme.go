package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the palette shared by the chrome, the panel frames and their
// content.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // active panel, title
	Secondary lipgloss.Color // title gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase     lipgloss.Color // Screen background, the color stacked panels fade to
	BgKeyboard lipgloss.Color // Simulated keyboard

	// Borders
	Border      lipgloss.Color // Stacked panel borders
	BorderFocus lipgloss.Color // Active panel borders

	Error lipgloss.Color // error panel title

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Accent   lipgloss.Style // Active panel title
	Keyboard lipgloss.Style // Simulated keyboard keys
	Error    lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:     lipgloss.Color("#1a1a1a"),
	BgKeyboard: lipgloss.Color("#303030"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Keyboard: lipgloss.NewStyle().
			Background(t.BgKeyboard).
			Foreground(t.FgMuted),
		Error: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
	}
}
