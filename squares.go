package main

import (
	"math"

	"github.com/jbeda/geom"
)

// SquareCount returns how many squares of side s fit around a circle of
// radius r at SQUARE_SPACING, rounded up to an even number so the two colors
// close without a seam. Degenerate inputs give 0.
func SquareCount(r, s float64) int {
	c := math.Ceil(2 * math.Pi * r / (SQUARE_SPACING * s))
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return 0
	}
	n := int(c)
	if n&1 != 0 {
		n++
	}
	return n
}

// SquareRing is one circle of tilted squares.
type SquareRing struct {
	Pivot  geom.Coord
	Radius float64
	Side   int
	// Parity selects the tilt direction; it does not affect colors.
	Parity bool
}

func (ring SquareRing) tilt() float64 {
	if ring.Parity {
		return SQUARE_TILT
	}
	return -SQUARE_TILT
}

// Layout places the squares. Even indices are light, odd ones dark.
func (ring SquareRing) Layout() []PlacedShape {
	n := SquareCount(ring.Radius, float64(ring.Side))
	if n == 0 {
		return nil
	}

	// The offset centers the square on its ring point; the side is a pixel
	// count so the half is truncated.
	half := float64(ring.Side / 2)
	offset := geom.Coord{X: half, Y: half}
	size := geom.Coord{X: float64(ring.Side), Y: float64(ring.Side)}
	dtheta := 2 * math.Pi / float64(n)

	shapes := make([]PlacedShape, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * dtheta
		class := Light
		if i&1 != 0 {
			class = Dark
		}
		shapes = append(shapes, PlacedShape{
			Kind:      Square,
			Translate: polar(ring.Radius, theta).Plus(offset),
			Pivot:     ring.Pivot,
			Rotation:  ring.tilt() + radsToDeg(theta),
			Size:      size,
			Class:     class,
		})
	}
	return shapes
}
