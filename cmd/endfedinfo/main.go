// endfedinfo prints the numbers behind the chart: resolved band edges, the
// plot extents, and every high-impedance length interval, without rendering
// anything.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JackHunt/RFToolbox/src/bandplan"
	"github.com/JackHunt/RFToolbox/src/endfed"
)

// parseBands turns positional args into band designators. Each argument may
// be a single integer or a comma separated list ("40,20,15"), the same
// surface the plotting CLI accepts.
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
	flag.Parse()

	bands, err := parseBands(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if len(bands) == 0 {
		bands = bandplan.Bands()
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

	fmt.Println(spec.Title())
	fmt.Printf("Axis: %.1f .. %.1f %s (tick step %.1f %s)\n",
		spec.AxisMin(), spec.AxisMax(), spec.Unit.Label(),
		spec.Unit.Convert(spec.TickIncFt), spec.Unit.Label())
	fmt.Printf("Always poor below %.1f %s\n", spec.Unit.Convert(spec.QtrWaveFt), spec.Unit.Label())
	for _, b := range spec.Bands {
		fmt.Printf("%dm  %.1f-%.1f kHz\n", b.Band, b.Edges.MinKHz, b.Edges.MaxKHz)
		for i, iv := range b.Intervals {
			fmt.Printf("  n=%-2d  %.2f .. %.2f %s\n",
				i+1, spec.Unit.Convert(iv.LowFt), spec.Unit.Convert(iv.HighFt), spec.Unit.Label())
		}
	}
	if len(spec.Skipped) > 0 {
		fmt.Printf("Skipped unknown bands: %v\n", spec.Skipped)
	}
}
