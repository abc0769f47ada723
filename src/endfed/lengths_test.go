package endfed

import (
	"errors"
	"math"
	"testing"

	"github.com/JackHunt/RFToolbox/src/bandplan"
)

func TestBadLengthsFortyMeterFirstHarmonic(t *testing.T) {
	e := bandplan.Edges{MinKHz: 7000, MaxKHz: 7200}
	ceiling := 2 * HalfWaveFt(7.0) // full wave of the band's lower edge
	ivs, err := BadLengths(e, ceiling)
	if err != nil {
		t.Fatalf("BadLengths: %v", err)
	}
	if len(ivs) == 0 {
		t.Fatalf("expected intervals")
	}
	if math.Abs(ivs[0].LowFt-468.0/7.2) > 1e-9 {
		t.Fatalf("n=1 low: got %v want %v", ivs[0].LowFt, 468.0/7.2)
	}
	if math.Abs(ivs[0].HighFt-468.0/7.0) > 1e-9 {
		t.Fatalf("n=1 high: got %v want %v", ivs[0].HighFt, 468.0/7.0)
	}
}

func TestBadLengthsOrderedAndDiverging(t *testing.T) {
	e := bandplan.Edges{MinKHz: 7000, MaxKHz: 7200}
	ivs, err := BadLengths(e, 1000)
	if err != nil {
		t.Fatalf("BadLengths: %v", err)
	}
	if len(ivs) < 2 {
		t.Fatalf("expected several intervals, got %d", len(ivs))
	}
	for i, iv := range ivs {
		if iv.LowFt > iv.HighFt {
			t.Fatalf("interval %d inverted: %+v", i, iv)
		}
		if i > 0 && iv.LowFt <= ivs[i-1].LowFt {
			t.Fatalf("lower bounds not strictly increasing at %d: %v <= %v", i, iv.LowFt, ivs[i-1].LowFt)
		}
	}
}

func TestBadLengthsCeilingStopsAfterCrossing(t *testing.T) {
	e := bandplan.Edges{MinKHz: 7000, MaxKHz: 7200}
	ceiling := 100.0
	ivs, err := BadLengths(e, ceiling)
	if err != nil {
		t.Fatalf("BadLengths: %v", err)
	}
	last := ivs[len(ivs)-1]
	if last.HighFt <= ceiling {
		t.Fatalf("expected final interval to cross the ceiling, got high=%v", last.HighFt)
	}
	for _, iv := range ivs[:len(ivs)-1] {
		if iv.HighFt > ceiling {
			t.Fatalf("non-final interval beyond ceiling: %+v", iv)
		}
	}
}

func TestBadLengthsHarmonicCap(t *testing.T) {
	e := bandplan.Edges{MinKHz: 7000, MaxKHz: 7200}
	// an unreachable ceiling must still terminate at the hard cap
	ivs, err := BadLengths(e, math.Inf(1))
	if err != nil {
		t.Fatalf("BadLengths: %v", err)
	}
	if len(ivs) != 51 {
		t.Fatalf("expected 51 intervals at the cap, got %d", len(ivs))
	}
}

func TestBadLengthsRejectsInvalidEdges(t *testing.T) {
	for _, e := range []bandplan.Edges{{MinKHz: 0, MaxKHz: 7200}, {MinKHz: 7200, MaxKHz: 7000}} {
		if _, err := BadLengths(e, 100); !errors.Is(err, bandplan.ErrInvalidEdges) {
			t.Fatalf("edges %+v: expected ErrInvalidEdges, got %v", e, err)
		}
	}
}

func TestUnitConversionRoundTrip(t *testing.T) {
	for _, ft := range []float64{0.1, 33.43, 66.86, 133.71, 517.1} {
		back := MetersToFeet(FeetToMeters(ft))
		if math.Abs(back-ft) > 1e-9 {
			t.Fatalf("round trip %v -> %v", ft, back)
		}
	}
}

func TestHalfWaveCalibration(t *testing.T) {
	// 468/f is the dipole calibration; a 7 MHz half wave is ~66.857 ft
	if got := HalfWaveFt(7.0); math.Abs(got-66.857142857) > 1e-6 {
		t.Fatalf("HalfWaveFt(7.0)=%v", got)
	}
	if got := QuarterWaveFt(7.0); math.Abs(got-HalfWaveFt(7.0)/2) > 1e-9 {
		t.Fatalf("QuarterWaveFt(7.0)=%v", got)
	}
}
