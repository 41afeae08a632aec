package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testPalette = Palette{Dark: "black", Light: "white", Background: "gray"}

func TestIllusion1Scenario(t *testing.T) {
	p := Illusion1Params{Name: "t", Width: 800, Rings: 4, R0: 100, DR: 72, Side: 24, Palette: testPalette}
	var buf bytes.Buffer
	if err := WriteIllusion1(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`viewBox="0 0 800 800"`,
		"fill:gray",
		"<style>rect{fill:none;stroke-width:3}rect.b{x:388;y:388;stroke:black;}rect.w{x:388;y:388;stroke:white;}</style>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document lacks %q", want)
		}
	}

	rings := p.SquareRings()
	if len(rings) != 4 {
		t.Fatalf("expected 4 rings, have %d", len(rings))
	}
	total := 0
	for i, ring := range rings {
		n := len(ring.Layout())
		min := int(math.Ceil(2 * math.Pi * (100 + 72*float64(i)) / 36))
		if n%2 != 0 || n < min {
			t.Errorf("ring %d: expected even count >= %d, have %d", i, min, n)
		}
		if ring.Parity != (i%2 == 1) {
			t.Errorf("ring %d: unexpected parity %v", i, ring.Parity)
		}
		total += n
	}
	if have := strings.Count(out, `<rect width="24" height="24" class=`); have != total {
		t.Errorf("expected %d squares in document, have %d", total, have)
	}
	if total != 150 {
		t.Errorf("expected 150 squares, have %d", total)
	}
}

func TestIllusion2Scenario(t *testing.T) {
	p := Illusion2Params{Name: "t2", Width: 800, Count: 3, Radius: 300, Long: 12, Short: 6, Palette: testPalette}
	var buf bytes.Buffer
	if err := WriteIllusion2(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, `viewBox="0 0 800 800"`) || !strings.Contains(out, "fill:gray") {
		t.Errorf("unexpected preamble:\n%s", out)
	}
	if !strings.Contains(out, "ellipse.b{cx:400;cy:400;stroke:none;fill:black;}") {
		t.Errorf("dark ellipse style missing")
	}

	braids := p.Braids()
	for i, b := range braids {
		for j, ring := range b.Rings() {
			if ring.Slots != 6 {
				t.Errorf("braid %d ring %d: expected 6 slots, have %d", i, j, ring.Slots)
			}
			if n := len(ring.Layout()); n != 3 {
				t.Errorf("braid %d ring %d: expected 3 ellipses, have %d", i, j, n)
			}
		}
	}
	if braids[1].Radius != 236 || !FloatAlmostEqual(braids[1].Long, 9.6) || !braids[1].Flip || braids[0].Flip {
		t.Errorf("unexpected inner braid %+v", braids[1])
	}
	if have := strings.Count(out, "<ellipse "); have != 18 {
		t.Errorf("expected 18 ellipses, have %d", have)
	}
	if have := strings.Count(out, `rx="9.6" ry="4.8"`); have != 9 {
		t.Errorf("expected 9 scaled ellipses, have %d", have)
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	p1 := Illusion1Params{Name: "a", Width: 800, Rings: 4, R0: 100, DR: 72, Side: 24, Palette: testPalette}
	p2 := Illusion2Params{Name: "b", Width: 800, Count: 36, Radius: 300, Long: 12, Short: 6, Palette: testPalette}

	var a, b bytes.Buffer
	WriteIllusion1(&a, p1)
	WriteIllusion1(&b, p1)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("illusion 1 output differs between runs")
	}

	a.Reset()
	b.Reset()
	WriteIllusion2(&a, p2)
	WriteIllusion2(&b, p2)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("illusion 2 output differs between runs")
	}
}

func TestOpticalIllusionFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := Illusion1Params{Name: "one", Width: 400, Rings: 2, R0: 50, DR: 40, Side: 12, Palette: testPalette}
	p2 := Illusion2Params{Name: "two", Width: 400, Count: 12, Radius: 150, Long: 6, Short: 3, Palette: testPalette}
	if err := OpticalIllusion1(dir, p1); err != nil {
		t.Fatal(err)
	}
	if err := OpticalIllusion2(dir, p2); err != nil {
		t.Fatal(err)
	}

	for _, tt := range []struct {
		name  string
		write func(*bytes.Buffer) error
	}{
		{"one", func(b *bytes.Buffer) error { return WriteIllusion1(b, p1) }},
		{"two", func(b *bytes.Buffer) error { return WriteIllusion2(b, p2) }},
	} {
		got, err := os.ReadFile(filepath.Join(dir, tt.name+".svg"))
		if err != nil {
			t.Fatal(err)
		}
		var want bytes.Buffer
		tt.write(&want)
		if !bytes.Equal(got, want.Bytes()) {
			t.Errorf("%s.svg differs from the in-memory rendering", tt.name)
		}
	}
}

func TestOpticalIllusionUnwritable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	p := Illusion1Params{Name: "t", Width: 800, Rings: 4, R0: 100, DR: 72, Side: 24, Palette: testPalette}
	err := OpticalIllusion1(dir, p)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, have %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "t.svg")); !os.IsNotExist(err) {
		t.Errorf("expected no file, stat returned %v", err)
	}
}

func TestExtentLoggedOnlyWhenDebugging(t *testing.T) {
	shapes := SquareRing{Radius: 100, Side: 24}.Layout()
	if have, want := extent(shapes).LogValue().Float64(), ShapeBounds(shapes).Width(); have != want {
		t.Errorf("expected extent %v, have %v", want, have)
	}

	p := Illusion1Params{Name: "t", Width: 800, Rings: 1, R0: 100, DR: 72, Side: 24, Palette: testPalette}

	var info bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&info, nil)))
	WriteIllusion1(io.Discard, p)
	if strings.Contains(info.String(), "extent=") {
		t.Errorf("debug record written at info level:\n%s", info.String())
	}

	var debug bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)
	WriteIllusion1(io.Discard, p)
	if !strings.Contains(debug.String(), "extent=") || !strings.Contains(debug.String(), "squares=18") {
		t.Errorf("missing ring record:\n%s", debug.String())
	}
}
