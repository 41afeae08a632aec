package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Authorship line written right after the root element of every document.
const AUTHOR_COMMENT = "<!-- Created by Ian Parberry -->"

// IOError reports a document that could not be created or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// stickyWriter remembers the first write error and drops everything after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) Write(p []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(p)
	if err != nil {
		sw.err = err
	}
	return n, err
}

////////////////////////////////////////////////////////////////////////////
// SVG document
//
// Document is a single output image. The background, group wrappers and
// closing tag go through svgo; the preamble and shape bodies are printed
// directly since they need the encoding declaration and fractional
// attributes.
type Document struct {
	canvas *svg.SVG
	out    *stickyWriter
	file   *os.File
	path   string
	closed bool
}

// NewDocument writes the preamble for a width x height canvas to w.
func NewDocument(w io.Writer, width, height int) *Document {
	sw := &stickyWriter{w: w}
	d := &Document{canvas: svg.New(sw), out: sw}
	d.printf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">
%s
`, width, height, width, height, AUTHOR_COMMENT)
	return d
}

// OpenDocument creates (or truncates) path and writes the preamble to it.
// The caller owns the returned document and must Close it.
func OpenDocument(path string, width, height int) (*Document, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}
	d := NewDocument(f, width, height)
	d.file = f
	d.path = path
	return d, nil
}

func (d *Document) printf(format string, a ...interface{}) (n int, errno error) {
	return fmt.Fprintf(d.canvas.Writer, format, a...)
}

// WriteStyleBlock embeds the given CSS rules verbatim in one <style> element.
func (d *Document) WriteStyleBlock(rules ...string) {
	d.printf("<style>%s</style>\n", strings.Join(rules, ""))
}

// WriteBackground fills the whole canvas with colorName.
func (d *Document) WriteBackground(width, height int, colorName string) {
	d.canvas.Rect(0, 0, width, height, "fill:"+colorName)
}

// Place serializes one shape as a translated and rotated group.
func (d *Document) Place(s PlacedShape) {
	d.canvas.Gtransform(fmt.Sprintf("translate(%0.1f %0.1f)rotate(%0.1f %.0f %.0f)",
		s.Translate.X, s.Translate.Y, s.Rotation, s.Pivot.X, s.Pivot.Y))
	switch s.Kind {
	case Square:
		d.printf(`<rect width="%.0f" height="%.0f" %s/>`+"\n", s.Size.X, s.Size.Y, s.Class.attr())
	case Ellipse:
		d.printf(`<ellipse rx="%0.1f" ry="%0.1f" %s/>`+"\n", s.Size.X, s.Size.Y, s.Class.attr())
	}
	d.canvas.Gend()
}

// PlaceAll places shapes in order.
func (d *Document) PlaceAll(shapes []PlacedShape) {
	for _, s := range shapes {
		d.Place(s)
	}
}

// Err returns the first write error seen so far.
func (d *Document) Err() error {
	if d.out.err == nil {
		return nil
	}
	return &IOError{Op: "write", Path: d.path, Err: d.out.err}
}

// Close writes the closing root tag and releases the file, if any. Only the
// first call has an effect.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.canvas.End()
	err := d.Err()
	if d.file != nil {
		if cerr := d.file.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: d.path, Err: cerr}
		}
		d.file = nil
	}
	return err
}
