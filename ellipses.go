package main

import (
	"github.com/jbeda/geom"
)

// NoFlip is the flip slot of a ring whose parity never changes.
const NoFlip = -1

// EllipseClass picks the color of slot i. Slots cycle dark, gap, light, gap
// when parity is set and light, gap, dark, gap otherwise.
func EllipseClass(i int, parity bool) ColorClass {
	switch i % 4 {
	case 0:
		if parity {
			return Dark
		}
		return Light
	case 2:
		if parity {
			return Light
		}
		return Dark
	}
	return None
}

// EllipseRing is one circle of ellipses with every other slot left empty.
type EllipseRing struct {
	Pivot  geom.Coord
	Radius float64
	Long   float64
	Short  float64
	// Slots counts gaps too; half of them hold an ellipse.
	Slots  int
	Start  float64
	Step   float64
	Parity bool
	// Flip is the slot after which Parity inverts, or NoFlip.
	Flip int
}

// Layout places one ellipse per non-gap slot, long axis tangential.
func (ring EllipseRing) Layout() []PlacedShape {
	shapes := make([]PlacedShape, 0, (ring.Slots+1)/2)
	size := geom.Coord{X: ring.Long, Y: ring.Short}
	parity := ring.Parity
	for i := 0; i < ring.Slots; i++ {
		theta := ring.Start + float64(i)*ring.Step
		if class := EllipseClass(i, parity); class != None {
			shapes = append(shapes, PlacedShape{
				Kind:      Ellipse,
				Translate: polar(ring.Radius, theta),
				Pivot:     ring.Pivot,
				Rotation:  ELLIPSE_TURN + radsToDeg(theta),
				Size:      size,
				Class:     class,
			})
		}
		if i == ring.Flip {
			parity = !parity
		}
	}
	return shapes
}
