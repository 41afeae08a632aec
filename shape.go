package main

import (
	"math"

	"github.com/jbeda/geom"
)

// Tunable constants for the illusions
const (
	SQUARE_SPACING    = 1.5  // center-to-center arc distance, in square widths
	SQUARE_TILT       = 12.0 // degrees off the radial line
	ELLIPSE_TURN      = 90.0 // long axis tangential to the ring
	STROKE_WIDTH      = 3
	BRAID_INNER_SHIFT = 64.0 // radius reduction of the second braid
	BRAID_INNER_SCALE = 0.8  // axis scale of the second braid
)

// CSS class names for the two colors.
const (
	DARK_CLASS  = "b"
	LIGHT_CLASS = "w"
)

type ShapeKind int

const (
	Square ShapeKind = iota
	Ellipse
)

type ColorClass int

const (
	None ColorClass = iota
	Dark
	Light
)

func (c ColorClass) String() string {
	switch c {
	case Dark:
		return DARK_CLASS
	case Light:
		return LIGHT_CLASS
	}
	return ""
}

func (c ColorClass) attr() string {
	if c == None {
		return ""
	}
	return `class="` + c.String() + `"`
}

// PlacedShape is a fully resolved shape ready for serialization.
//
// Translate is relative to the ring center; the class rules in the style
// block move the shape onto Pivot, and Rotation (degrees) turns it about
// Pivot. Size is width/height for squares and rx/ry for ellipses.
type PlacedShape struct {
	Kind      ShapeKind
	Translate geom.Coord
	Pivot     geom.Coord
	Rotation  float64
	Size      geom.Coord
	Class     ColorClass
}

func radsToDeg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// polar returns the point at angle theta on a circle of radius r about the
// origin.
func polar(r, theta float64) geom.Coord {
	return geom.Coord{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// ShapeBounds returns the rectangle spanned by the shape translations. An
// empty slice yields the zero Rect.
func ShapeBounds(shapes []PlacedShape) geom.Rect {
	if len(shapes) == 0 {
		return geom.Rect{}
	}
	bounds := geom.Rect{Min: shapes[0].Translate, Max: shapes[0].Translate}
	for _, s := range shapes[1:] {
		bounds.ExpandToContainCoord(s.Translate)
	}
	return bounds
}
