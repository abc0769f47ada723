// endfedplot renders a chart of the wire lengths to avoid when cutting an
// end-fed antenna for one or more amateur bands.
//
// Band designators are given as positional arguments (comma separated lists
// are also accepted), e.g.:
//
//	endfedplot -cw -metric -out lengths.png 80 40 20
//
// For each band the tool marks every multiple of the half wavelength across
// the band edges as a filled region, plus the always-poor region below a
// quarter wave of the lowest selected frequency. Unknown designators are
// warned and skipped; the chart is still produced from whatever resolved.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JackHunt/RFToolbox/src/endfed"
	"github.com/JackHunt/RFToolbox/src/render"
)

// parseBands turns positional args into band designators. Each argument may
// be a single integer or a comma separated list ("40,20,15").
func parseBands(args []string) ([]int, error) {
	var bands []int
	for _, a := range args {
		for _, tok := range strings.Split(a, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("band %q is not an integer designator", tok)
			}
			bands = append(bands, n)
		}
	}
	return bands, nil
}

func main() {
	cw := flag.Bool("cw", false, "Use CW sub-band edges instead of full band edges")
	metric := flag.Bool("metric", false, "Display lengths in meters instead of feet")
	outFile := flag.String("out", "endfed_lengths.png", "Output PNG file")
	width := flag.Int("width", 1100, "Chart width in pixels")
	height := flag.Int("height", 360, "Chart height in pixels")
	hints := flag.Bool("hints", false, "Draw a reading hint onto the chart")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] band [band ...]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Bands are meters designators, e.g. 160 80 40 20.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	endfed.SetLogLevel(*logLevel)

	bands, err := parseBands(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	if len(bands) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	unit := endfed.UnitFeet
	if *metric {
		unit = endfed.UnitMeters
	}
	spec, err := endfed.Build(bands, *cw, unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(spec.Skipped) > 0 {
		endfed.Infof("plotting %d of %d requested bands", len(spec.Bands), len(bands))
	}

	b, err := render.PNG(spec, render.Options{Width: *width, Height: *height, Footnote: *hints})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outFile, b, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: write %s: %v\n", *outFile, err)
		os.Exit(1)
	}
	endfed.Infof("wrote %s (%s, axis %.1f..%.1f %s)",
		*outFile, spec.BandList(), spec.AxisMin(), spec.AxisMax(), spec.Unit.Label())
}
