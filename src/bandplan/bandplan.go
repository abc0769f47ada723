// Package bandplan holds the fixed UK amateur allocation table used to turn
// a band designator (the conventional "meters" number, e.g. 40 for the
// 40m band) into its frequency edges in kHz.
//
// Two independent tables are kept: the full band edges and the CW sub-band
// edges. The CW table is a separate constant set, not derived from the full
// table, so sub-band boundaries can be corrected independently.
package bandplan

import (
	"errors"
	"fmt"
	"sort"
)

// Edges is an inclusive frequency span in kHz, MinKHz <= MaxKHz.
type Edges struct {
	MinKHz float64
	MaxKHz float64
}

var (
	// ErrUnknownBand is returned by Resolve for a designator not in the table.
	ErrUnknownBand = errors.New("unknown band")
	// ErrInvalidEdges flags a degenerate span (min <= 0 or min > max).
	ErrInvalidEdges = errors.New("invalid band edges")
)

// Validate rejects degenerate spans before any wavelength math divides by them.
func (e Edges) Validate() error {
	if e.MinKHz <= 0 {
		return fmt.Errorf("lower edge %.1f kHz not positive: %w", e.MinKHz, ErrInvalidEdges)
	}
	if e.MinKHz > e.MaxKHz {
		return fmt.Errorf("lower edge %.1f kHz above upper edge %.1f kHz: %w", e.MinKHz, e.MaxKHz, ErrInvalidEdges)
	}
	return nil
}

// MinMHz returns the lower edge in MHz.
func (e Edges) MinMHz() float64 { return e.MinKHz / 1000.0 }

// MaxMHz returns the upper edge in MHz.
func (e Edges) MaxMHz() float64 { return e.MaxKHz / 1000.0 }

// fullBand is the UK amateur allocation, full band edges in kHz.
var fullBand = map[int]Edges{
	160: {1810, 2000},
	80:  {3500, 3800},
	60:  {5258.5, 5406.5},
	40:  {7000, 7200},
	30:  {10100, 10150},
	20:  {14000, 14350},
	17:  {18068, 18168},
	15:  {21000, 21450},
	12:  {24890, 24990},
	10:  {28000, 29700},
	6:   {50000, 52000},
}

// cwSubBand is the CW segment of each band, kHz. Always a subset of fullBand.
var cwSubBand = map[int]Edges{
	160: {1810, 1838},
	80:  {3500, 3570},
	60:  {5258.5, 5264},
	40:  {7000, 7040},
	30:  {10100, 10130},
	20:  {14000, 14070},
	17:  {18068, 18095},
	15:  {21000, 21070},
	12:  {24890, 24915},
	10:  {28000, 28070},
	6:   {50000, 50100},
}

// Resolve maps a band designator to its edges, picking the CW sub-band table
// when cw is set. Unknown designators return an error wrapping ErrUnknownBand;
// callers are expected to warn and carry on with the bands that did resolve.
func Resolve(band int, cw bool) (Edges, error) {
	tbl := fullBand
	if cw {
		tbl = cwSubBand
	}
	e, ok := tbl[band]
	if !ok {
		return Edges{}, fmt.Errorf("%dm: %w", band, ErrUnknownBand)
	}
	return e, nil
}

// Bands returns every known designator, descending (160 first). Descending
// designator order is descending wavelength, so the first entry carries the
// lowest frequencies.
func Bands() []int {
	out := make([]int, 0, len(fullBand))
	for b := range fullBand {
		out = append(out, b)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
