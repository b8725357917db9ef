// Package panel defines the record for one stacked overlay panel and its
// per-panel configuration.
package panel

import (
	"fmt"
	"time"
)

// ID identifies a panel for its whole lifetime.
type ID struct {
	Created time.Time
	Kind    string
}

// NewID creates an identifier from a creation time and a type discriminator.
func NewID(kind string, now time.Time) ID {
	return ID{Created: now, Kind: kind}
}

// String returns a stable textual form, e.g. "note@1700000000000000000".
func (id ID) String() string {
	return fmt.Sprintf("%s@%d", id.Kind, id.Created.UnixNano())
}

// IsZero reports whether the ID was never assigned.
func (id ID) IsZero() bool {
	return id.Kind == "" && id.Created.IsZero()
}

// Panel is one stacked panel. It is a value: the engine never mutates a
// Panel in place, it hands modified copies to the owning collection.
type Panel struct {
	ID     ID
	Config Config

	// DragHeight is the signed height adjustment left by a completed drag.
	DragHeight float64

	measured    float64
	hasMeasured bool
}

// New creates a panel with no measured height.
func New(id ID, cfg Config) Panel {
	return Panel{ID: id, Config: cfg}
}

// MeasuredHeight returns the last reported content height, if any.
func (p Panel) MeasuredHeight() (float64, bool) {
	return p.measured, p.hasMeasured
}

// WithMeasuredHeight returns a copy with the measured content height set.
func (p Panel) WithMeasuredHeight(h float64) Panel {
	p.measured = h
	p.hasMeasured = true
	return p
}

// WithoutMeasuredHeight returns a copy whose measured height is unset.
func (p Panel) WithoutMeasuredHeight() Panel {
	p.measured = 0
	p.hasMeasured = false
	return p
}

// WithDragHeight returns a copy with the drag height replaced.
func (p Panel) WithDragHeight(d float64) Panel {
	p.DragHeight = d
	return p
}
