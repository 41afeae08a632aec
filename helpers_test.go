package main

import (
	"math"

	"github.com/jbeda/geom"
)

// Comparing floating point sucks; this is good enough for layout checks.
const FLOAT_EQUAL_THRESH = 0.00000001

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FLOAT_EQUAL_THRESH
}

func AlmostEqualsCoord(a, b geom.Coord) bool {
	return FloatAlmostEqual(a.X, b.X) && FloatAlmostEqual(a.Y, b.Y)
}

func classes(shapes []PlacedShape) []ColorClass {
	r := make([]ColorClass, len(shapes))
	for i, s := range shapes {
		r[i] = s.Class
	}
	return r
}
