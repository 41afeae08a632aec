// Command optical-illusions writes two optical illusions, each in two color
// schemes, as SVG files:
//
//	output1.svg, output1a.svg   concentric circles of tilted squares
//	output2.svg, output2a.svg   two braids of black and white ellipses
package main

import (
	"flag"
	"log/slog"
	"os"
	"sync"
)

var (
	outDir  = flag.String("o", ".", "output directory")
	verbose = flag.Bool("v", false, "log progress to stderr")
)

var (
	classic = Palette{Dark: "black", Light: "white", Background: "gray"}
	bright  = Palette{Dark: "blue", Light: "yellow", Background: "forestgreen"}
)

func illusion1(name string, p Palette) Illusion1Params {
	return Illusion1Params{Name: name, Width: 800, Rings: 4, R0: 100, DR: 72, Side: 24, Palette: p}
}

func illusion2(name string, p Palette) Illusion2Params {
	return Illusion2Params{Name: name, Width: 800, Count: 36, Radius: 300, Long: 12, Short: 6, Palette: p}
}

// generateAll writes the four images into dir. The images share nothing so
// they are produced in parallel.
func generateAll(dir string) {
	jobs := map[string]func() error{
		"output1":  func() error { return OpticalIllusion1(dir, illusion1("output1", classic)) },
		"output1a": func() error { return OpticalIllusion1(dir, illusion1("output1a", bright)) },
		"output2":  func() error { return OpticalIllusion2(dir, illusion2("output2", classic)) },
		"output2a": func() error { return OpticalIllusion2(dir, illusion2("output2a", bright)) },
	}

	var wg sync.WaitGroup
	for name, job := range jobs {
		wg.Add(1)
		go func(name string, job func() error) {
			defer wg.Done()
			logResult(name, job())
		}(name, job)
	}
	wg.Wait()
}

func main() {
	flag.Parse()
	if *verbose {
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	generateAll(*outDir)
}
