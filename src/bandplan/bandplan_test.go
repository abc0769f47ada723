package bandplan

import (
	"errors"
	"testing"
)

func TestResolveAllKnownBandsValid(t *testing.T) {
	for _, cw := range []bool{false, true} {
		for _, b := range Bands() {
			e, err := Resolve(b, cw)
			if err != nil {
				t.Fatalf("Resolve(%d, cw=%v): %v", b, cw, err)
			}
			if e.MinKHz <= 0 {
				t.Fatalf("band %dm cw=%v: non-positive lower edge %v", b, cw, e.MinKHz)
			}
			if e.MinKHz > e.MaxKHz {
				t.Fatalf("band %dm cw=%v: inverted edges %v > %v", b, cw, e.MinKHz, e.MaxKHz)
			}
			if err := e.Validate(); err != nil {
				t.Fatalf("band %dm cw=%v: Validate: %v", b, cw, err)
			}
		}
	}
}

func TestCWSubBandWithinFullBand(t *testing.T) {
	for _, b := range Bands() {
		full, err := Resolve(b, false)
		if err != nil {
			t.Fatalf("Resolve(%d, full): %v", b, err)
		}
		cw, err := Resolve(b, true)
		if err != nil {
			t.Fatalf("Resolve(%d, cw): %v", b, err)
		}
		if cw.MinKHz < full.MinKHz || cw.MaxKHz > full.MaxKHz {
			t.Fatalf("band %dm: CW segment [%v,%v] outside full band [%v,%v]",
				b, cw.MinKHz, cw.MaxKHz, full.MinKHz, full.MaxKHz)
		}
	}
}

func TestResolveUnknownBand(t *testing.T) {
	_, err := Resolve(999, false)
	if err == nil {
		t.Fatalf("expected error for unknown band")
	}
	if !errors.Is(err, ErrUnknownBand) {
		t.Fatalf("expected ErrUnknownBand, got %v", err)
	}
}

func TestResolve40mFullVsCW(t *testing.T) {
	full, _ := Resolve(40, false)
	cw, _ := Resolve(40, true)
	if full.MinKHz != 7000 || full.MaxKHz != 7200 {
		t.Fatalf("40m full edges wrong: %+v", full)
	}
	// lower edge shared, CW upper edge narrower
	if cw.MinKHz != full.MinKHz {
		t.Fatalf("expected identical lower edges, got %v vs %v", cw.MinKHz, full.MinKHz)
	}
	if cw.MaxKHz >= full.MaxKHz {
		t.Fatalf("expected narrower CW upper edge, got %v vs %v", cw.MaxKHz, full.MaxKHz)
	}
}

func TestBandsDescending(t *testing.T) {
	bs := Bands()
	if len(bs) != 11 {
		t.Fatalf("expected 11 bands, got %d", len(bs))
	}
	if bs[0] != 160 || bs[len(bs)-1] != 6 {
		t.Fatalf("expected 160 first and 6 last, got %v", bs)
	}
	for i := 1; i < len(bs); i++ {
		if bs[i] >= bs[i-1] {
			t.Fatalf("not strictly descending at %d: %v", i, bs)
		}
	}
}

func TestValidateRejectsDegenerateEdges(t *testing.T) {
	cases := []Edges{
		{0, 7200},
		{-7000, 7200},
		{7200, 7000},
	}
	for _, e := range cases {
		if err := e.Validate(); !errors.Is(err, ErrInvalidEdges) {
			t.Fatalf("edges %+v: expected ErrInvalidEdges, got %v", e, err)
		}
	}
}
