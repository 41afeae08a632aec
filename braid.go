package main

import (
	"math"

	"github.com/jbeda/geom"
)

// Braid is three concentric rings of ellipses whose gaps interlock: a
// middle ring starting dark at the top, an inner ring starting with a gap
// and an outer ring like the inner one with the colors swapped.
type Braid struct {
	Pivot  geom.Coord
	Radius float64
	Long   float64
	Short  float64
	// Count is the number of ellipses per ring.
	Count int
	// Flip mirrors the braid by starting at the bottom instead of the top.
	Flip bool
}

// Rings returns the middle, inner and outer rings in drawing order.
func (b Braid) Rings() [3]EllipseRing {
	dtheta := math.Pi / float64(b.Count)
	theta := -math.Pi / 2
	if b.Flip {
		theta = math.Pi / 2
	}
	n := 2 * b.Count

	ring := func(r, start float64, parity bool, flip int) EllipseRing {
		return EllipseRing{
			Pivot:  b.Pivot,
			Radius: r,
			Long:   b.Long,
			Short:  b.Short,
			Slots:  n,
			Start:  start,
			Step:   dtheta,
			Parity: parity,
			Flip:   flip,
		}
	}
	return [3]EllipseRing{
		ring(b.Radius, theta, true, NoFlip),
		ring(b.Radius-b.Short, theta+dtheta, true, n/2-1),
		ring(b.Radius+b.Short, theta+dtheta, false, n/2-2),
	}
}

// Layout concatenates the shapes of the three rings.
func (b Braid) Layout() []PlacedShape {
	var shapes []PlacedShape
	for _, ring := range b.Rings() {
		shapes = append(shapes, ring.Layout()...)
	}
	return shapes
}
