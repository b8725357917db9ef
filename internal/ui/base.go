package ui

// Base keeps the content size the host last assigned. Panel content embeds
// it to satisfy the SetSize half of popup.Popup.
type Base struct {
	width, height int
}

// SetSize records the room the panel gives its content.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// Sized reports whether the host has measured the content yet. Views render
// nothing until it has.
func (b Base) Sized() bool {
	return b.width > 0 && b.height > 0
}
