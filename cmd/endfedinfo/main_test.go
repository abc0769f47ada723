package main

import (
	"reflect"
	"testing"
)

func TestParseBandsCommaSeparated(t *testing.T) {
	got, err := parseBands([]string{"80,40", " 20 , 10 "})
	if err != nil {
		t.Fatalf("parseBands: %v", err)
	}
	if !reflect.DeepEqual(got, []int{80, 40, 20, 10}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseBandsPositional(t *testing.T) {
	got, err := parseBands([]string{"160", "6"})
	if err != nil {
		t.Fatalf("parseBands: %v", err)
	}
	if !reflect.DeepEqual(got, []int{160, 6}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseBandsRejectsNonInteger(t *testing.T) {
	if _, err := parseBands([]string{"40m"}); err == nil {
		t.Fatalf("expected error for non-integer designator")
	}
}
