// Package geometry describes the viewport the panel stacks are laid out in.
package geometry

import "github.com/llehouerou/popstack/internal/panel"

// Context is the environment of one layout pass. The host replaces it
// wholesale on resize or keyboard changes.
type Context struct {
	ViewportWidth   float64
	ViewportHeight  float64
	SafeArea        panel.Insets
	KeyboardVisible bool
	KeyboardHeight  float64
}

// AwayInset returns the safe-area inset on the edge opposite the anchor.
// Center stacks have no single away edge and return the sum of both.
func (c Context) AwayInset(a panel.Alignment) float64 {
	switch a {
	case panel.AlignTop:
		return c.SafeArea.Bottom
	case panel.AlignBottom:
		return c.SafeArea.Top
	default:
		return c.SafeArea.Top + c.SafeArea.Bottom
	}
}

// KeyboardInset returns the keyboard occlusion, 0 when hidden.
func (c Context) KeyboardInset() float64 {
	if !c.KeyboardVisible {
		return 0
	}
	return c.KeyboardHeight
}

// WithKeyboard returns a copy with the keyboard state replaced.
func (c Context) WithKeyboard(visible bool, height float64) Context {
	c.KeyboardVisible = visible
	c.KeyboardHeight = height
	return c
}
