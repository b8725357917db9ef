// Package ui holds what panel content and the overlay renderer share.
package ui

// A panel frame is a one-cell border on every side.
const (
	BorderHeight = 2
	BorderWidth  = 2
)
