package main

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Palette names the three colors of an image. Names go into the document
// unchanged.
type Palette struct {
	Dark       string
	Light      string
	Background string
}

// Unknown returns the palette entries that are not SVG color keywords.
// Hex and functional notations are reported too; they still render.
func (p Palette) Unknown() []string {
	var unknown []string
	for _, name := range []string{p.Dark, p.Light, p.Background} {
		if _, ok := colornames.Map[strings.ToLower(name)]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
