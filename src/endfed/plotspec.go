package endfed

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/JackHunt/RFToolbox/src/bandplan"
)

var (
	// ErrNoValidBands is returned when every requested band failed to resolve.
	ErrNoValidBands = errors.New("no valid bands")
	// ErrDegenerateAxis flags an axis span or tick step that cannot be drawn.
	ErrDegenerateAxis = errors.New("degenerate axis range")
)

// Unit selects the displayed length unit. All computation stays in feet;
// a Unit is a pure scale transform applied at presentation time.
type Unit int

const (
	UnitFeet Unit = iota
	UnitMeters
)

// Label is the short axis label for the unit.
func (u Unit) Label() string {
	if u == UnitMeters {
		return "m"
	}
	return "ft"
}

// Convert maps a length in feet into the display unit.
func (u Unit) Convert(ft float64) float64 {
	if u == UnitMeters {
		return FeetToMeters(ft)
	}
	return ft
}

// BandRegions is one resolved band with its high-impedance length intervals.
type BandRegions struct {
	Band      int
	Edges     bandplan.Edges
	Intervals []LengthInterval
}

// PlotSpec is everything a chart backend needs to draw the lengths-to-avoid
// figure: the resolved bands (descending designator, so lowest frequency
// first), the wave extents and axis floor in feet, and the tick step.
type PlotSpec struct {
	Bands   []BandRegions
	Skipped []int
	CW      bool
	Unit    Unit

	FullWaveFt        float64
	QtrWaveFt         float64
	ShortestQtrWaveFt float64
	TickIncFt         float64
}

// Build resolves the requested bands and derives the plot geometry.
// Unknown designators are warned and skipped (recorded in Skipped);
// duplicates are dropped. Build fails with ErrNoValidBands when nothing
// resolved and with ErrDegenerateAxis when the axis span or tick step
// collapses, so callers never hand a hung or empty figure to a backend.
func Build(bands []int, cw bool, unit Unit) (*PlotSpec, error) {
	spec := &PlotSpec{CW: cw, Unit: unit}

	seen := make(map[int]bool, len(bands))
	for _, b := range bands {
		if seen[b] {
			Debugf("duplicate band %dm ignored", b)
			continue
		}
		seen[b] = true
		e, err := bandplan.Resolve(b, cw)
		if err != nil {
			Warnf("skipping band: %v", err)
			spec.Skipped = append(spec.Skipped, b)
			continue
		}
		spec.Bands = append(spec.Bands, BandRegions{Band: b, Edges: e})
	}
	if len(spec.Bands) == 0 {
		return nil, fmt.Errorf("%d requested: %w", len(bands), ErrNoValidBands)
	}

	// Descending designator = descending wavelength, so the first entry's
	// lower edge is the lowest frequency in play.
	sort.Slice(spec.Bands, func(i, j int) bool { return spec.Bands[i].Band > spec.Bands[j].Band })
	lowestMHz := spec.Bands[0].Edges.MinMHz()

	spec.FullWaveFt = 2 * HalfWaveFt(lowestMHz)
	spec.QtrWaveFt = spec.FullWaveFt / 4
	spec.ShortestQtrWaveFt = math.Floor(QuarterWaveFt(lowestMHz)/10) * 10

	for i := range spec.Bands {
		ivs, err := BadLengths(spec.Bands[i].Edges, spec.FullWaveFt)
		if err != nil {
			return nil, fmt.Errorf("band %dm: %w", spec.Bands[i].Band, err)
		}
		spec.Bands[i].Intervals = ivs
	}

	if spec.FullWaveFt <= spec.ShortestQtrWaveFt {
		return nil, fmt.Errorf("axis span [%.1f, %.1f] ft: %w",
			spec.ShortestQtrWaveFt, spec.FullWaveFt, ErrDegenerateAxis)
	}
	spec.TickIncFt = math.Floor((spec.FullWaveFt-spec.ShortestQtrWaveFt)/float64(len(spec.Bands))/1.5/10) * 10
	if spec.TickIncFt <= 0 {
		return nil, fmt.Errorf("tick step %.1f ft over span [%.1f, %.1f]: %w",
			spec.TickIncFt, spec.ShortestQtrWaveFt, spec.FullWaveFt, ErrDegenerateAxis)
	}
	return spec, nil
}

// AxisMin returns the axis lower bound in the display unit.
func (s *PlotSpec) AxisMin() float64 { return s.Unit.Convert(s.ShortestQtrWaveFt) }

// AxisMax returns the axis upper bound in the display unit.
func (s *PlotSpec) AxisMax() float64 { return s.Unit.Convert(s.FullWaveFt) }

// Ticks returns tick positions in the display unit, stepping TickIncFt from
// the axis floor and always ending exactly at the full-wave ceiling.
func (s *PlotSpec) Ticks() []float64 {
	ticks := make([]float64, 0, 8)
	// stop half a step short of the ceiling so the final tick never doubles up
	for v := s.ShortestQtrWaveFt; v <= s.FullWaveFt-s.TickIncFt/2; v += s.TickIncFt {
		ticks = append(ticks, s.Unit.Convert(v))
	}
	ticks = append(ticks, s.Unit.Convert(s.FullWaveFt))
	return ticks
}

// BandList renders the resolved bands as "160m, 80m, 40m".
func (s *PlotSpec) BandList() string {
	parts := make([]string, len(s.Bands))
	for i, b := range s.Bands {
		parts[i] = fmt.Sprintf("%dm", b.Band)
	}
	return strings.Join(parts, ", ")
}

// Title is the chart title: bands plus the sub-band mode.
func (s *PlotSpec) Title() string {
	t := "End-fed wire lengths to avoid: " + s.BandList()
	if s.CW {
		t += " (CW sub-bands)"
	}
	return t
}

// AxisName labels the x axis with the active unit.
func (s *PlotSpec) AxisName() string {
	return fmt.Sprintf("Wire length (%s)", s.Unit.Label())
}
