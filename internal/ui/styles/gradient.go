package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not "#rrggbb", such as ANSI indices.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text bold, with its foreground blended from one color
// to the other across the grapheme clusters.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	a, b := toColorful(from), toColorful(to)
	var sb strings.Builder
	for i, c := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		fg := lipgloss.Color(a.BlendHcl(b, t).Clamped().Hex())
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(fg).Render(c))
	}
	return sb.String()
}

// Dim fades c toward the screen background. amount is the opacity of the
// dark overlay: 0 leaves the color unchanged, 1 gives the background.
func Dim(c lipgloss.Color, amount float64) lipgloss.Color {
	if amount <= 0 {
		return c
	}
	amount = min(amount, 1)
	return lipgloss.Color(toColorful(c).BlendRgb(toColorful(T().BgBase), amount).Clamped().Hex())
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
