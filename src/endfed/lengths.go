// Package endfed computes the wire lengths at which an end-fed antenna
// presents a high feedpoint impedance: the multiples of the half wavelength
// across a band's frequency edges. Lengths are computed in feet using the
// classic 468/f_MHz half-wave approximation and converted to meters only
// for presentation.
package endfed

import (
	"github.com/JackHunt/RFToolbox/src/bandplan"
)

const (
	// HalfWaveFeetPerMHz is the classic amateur half-wavelength calibration:
	// 468/f_MHz feet. This literal carries the conductor velocity-factor
	// correction; it is not the free-space 300/f metric formula.
	HalfWaveFeetPerMHz = 468.0
	// QuarterWaveFeetPerMHz is the matching quarter-wave calibration.
	QuarterWaveFeetPerMHz = 234.0
	// FeetPerMeter is the fixed conversion used for metric display.
	FeetPerMeter = 3.2808

	// maxHarmonics bounds the interval loop against pathological edges.
	maxHarmonics = 51
)

// LengthInterval is a wire-length range in feet over which feedpoint
// impedance is high, LowFt <= HighFt.
type LengthInterval struct {
	LowFt  float64
	HighFt float64
}

// HalfWaveFt returns the half wavelength in feet at f MHz.
func HalfWaveFt(mhz float64) float64 { return HalfWaveFeetPerMHz / mhz }

// QuarterWaveFt returns the quarter wavelength in feet at f MHz.
func QuarterWaveFt(mhz float64) float64 { return QuarterWaveFeetPerMHz / mhz }

// FeetToMeters converts a length in feet to meters.
func FeetToMeters(ft float64) float64 { return ft / FeetPerMeter }

// MetersToFeet converts a length in meters to feet.
func MetersToFeet(m float64) float64 { return m * FeetPerMeter }

// BadLengths returns the high-impedance length intervals for the given band
// edges, lowest harmonic first. For harmonic n the interval spans
// n*468/maxMHz .. n*468/minMHz feet. Generation stops after emitting the
// first interval whose upper bound exceeds ceilingFt, and never exceeds the
// harmonic cap regardless of ceiling. Each call iterates independently.
func BadLengths(e bandplan.Edges, ceilingFt float64) ([]LengthInterval, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	intervals := make([]LengthInterval, 0, 8)
	for n := 1; n <= maxHarmonics; n++ {
		iv := LengthInterval{
			LowFt:  float64(n) * HalfWaveFt(e.MaxMHz()),
			HighFt: float64(n) * HalfWaveFt(e.MinMHz()),
		}
		intervals = append(intervals, iv)
		if iv.HighFt > ceilingFt {
			break
		}
	}
	return intervals, nil
}
