package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/jbeda/geom"
)

// Illusion1Params describes concentric circles of tilted squares.
type Illusion1Params struct {
	Name  string // file name without extension
	Width int    // width and height of the square canvas
	Rings int
	R0    float64 // radius of the innermost ring
	DR    float64 // radius increment per ring
	Side  int     // square side in pixels
	Palette
}

// Illusion2Params describes two braids of ellipses.
type Illusion2Params struct {
	Name   string
	Width  int
	Count  int     // ellipses per ring
	Radius float64 // radius of the outer braid
	Long   float64 // long ellipse radius
	Short  float64 // short ellipse radius
	Palette
}

func (p Illusion1Params) pivot() geom.Coord {
	c := float64(p.Width/2 - p.Side/2)
	return geom.Coord{X: c, Y: c}
}

func (p Illusion2Params) pivot() geom.Coord {
	c := float64(p.Width / 2)
	return geom.Coord{X: c, Y: c}
}

// SquareRings returns the rings of illusion 1, innermost first. Odd rings
// tilt the other way.
func (p Illusion1Params) SquareRings() []SquareRing {
	rings := make([]SquareRing, p.Rings)
	for i := range rings {
		rings[i] = SquareRing{
			Pivot:  p.pivot(),
			Radius: p.R0 + float64(i)*p.DR,
			Side:   p.Side,
			Parity: i&1 != 0,
		}
	}
	return rings
}

// Braids returns the outer braid and the smaller mirrored inner braid.
func (p Illusion2Params) Braids() [2]Braid {
	return [2]Braid{
		{Pivot: p.pivot(), Radius: p.Radius, Long: p.Long, Short: p.Short, Count: p.Count},
		{
			Pivot:  p.pivot(),
			Radius: p.Radius - BRAID_INNER_SHIFT,
			Long:   BRAID_INNER_SCALE * p.Long,
			Short:  BRAID_INNER_SCALE * p.Short,
			Count:  p.Count,
			Flip:   true,
		},
	}
}

// extent is the width of the shapes' bounds, resolved only when a debug
// record is actually written.
type extent []PlacedShape

func (e extent) LogValue() slog.Value {
	return slog.Float64Value(ShapeBounds(e).Width())
}

func checkPalette(name string, p Palette) {
	if !Logger().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if unknown := p.Unknown(); len(unknown) > 0 {
		Logger().Debug("colors are not SVG keywords", "image", name, "colors", unknown)
	}
}

// WriteIllusion1 renders illusion 1 to w and returns the first write error.
func WriteIllusion1(w io.Writer, p Illusion1Params) error {
	d := NewDocument(w, p.Width, p.Width)
	drawIllusion1(d, p)
	return d.Close()
}

// WriteIllusion2 renders illusion 2 to w and returns the first write error.
func WriteIllusion2(w io.Writer, p Illusion2Params) error {
	d := NewDocument(w, p.Width, p.Width)
	drawIllusion2(d, p)
	return d.Close()
}

func drawIllusion1(d *Document, p Illusion1Params) {
	checkPalette(p.Name, p.Palette)
	c := p.pivot()
	d.WriteStyleBlock(
		fmt.Sprintf("rect{fill:none;stroke-width:%d}", STROKE_WIDTH),
		fmt.Sprintf("rect.%s{x:%.0f;y:%.0f;stroke:%s;}", DARK_CLASS, c.X, c.Y, p.Dark),
		fmt.Sprintf("rect.%s{x:%.0f;y:%.0f;stroke:%s;}", LIGHT_CLASS, c.X, c.Y, p.Light),
	)
	d.WriteBackground(p.Width, p.Width, p.Background)

	for i, ring := range p.SquareRings() {
		shapes := ring.Layout()
		Logger().Debug("square ring", "image", p.Name, "ring", i,
			"radius", ring.Radius, "squares", len(shapes), "extent", extent(shapes))
		d.PlaceAll(shapes)
	}
}

func drawIllusion2(d *Document, p Illusion2Params) {
	checkPalette(p.Name, p.Palette)
	c := p.pivot()
	d.WriteStyleBlock(
		fmt.Sprintf("ellipse{fill:none;stroke-width:%d}", STROKE_WIDTH),
		fmt.Sprintf("ellipse.%s{cx:%.0f;cy:%.0f;stroke:none;fill:%s;}", DARK_CLASS, c.X, c.Y, p.Dark),
		fmt.Sprintf("ellipse.%s{cx:%.0f;cy:%.0f;stroke:none;fill:%s;}", LIGHT_CLASS, c.X, c.Y, p.Light),
	)
	d.WriteBackground(p.Width, p.Width, p.Background)

	for i, braid := range p.Braids() {
		shapes := braid.Layout()
		Logger().Debug("braid", "image", p.Name, "braid", i,
			"radius", braid.Radius, "ellipses", len(shapes), "extent", extent(shapes))
		d.PlaceAll(shapes)
	}
}

// OpticalIllusion1 writes illusion 1 to dir/Name.svg. If the file cannot be
// created nothing is drawn and the *IOError is returned for logging only;
// callers are expected to ignore it and carry on with the next image.
func OpticalIllusion1(dir string, p Illusion1Params) error {
	d, err := OpenDocument(filepath.Join(dir, p.Name+".svg"), p.Width, p.Width)
	if err != nil {
		return err
	}
	defer d.Close()
	drawIllusion1(d, p)
	return d.Close()
}

// OpticalIllusion2 writes illusion 2 to dir/Name.svg. Errors are reported
// the same way as by OpticalIllusion1 and are likewise meant to be ignored.
func OpticalIllusion2(dir string, p Illusion2Params) error {
	d, err := OpenDocument(filepath.Join(dir, p.Name+".svg"), p.Width, p.Width)
	if err != nil {
		return err
	}
	defer d.Close()
	drawIllusion2(d, p)
	return d.Close()
}

// logResult reports the outcome of one image. Failures are never fatal.
func logResult(name string, err error) {
	var ioErr *IOError
	switch {
	case err == nil:
		Logger().Info("wrote image", "image", name)
	case errors.As(err, &ioErr):
		Logger().Warn("skipped image", "image", name, "op", ioErr.Op, "path", ioErr.Path, "err", ioErr.Err)
	default:
		Logger().Warn("skipped image", "image", name, slog.Any("err", err))
	}
}
