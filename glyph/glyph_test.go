package glyph_test

import (
	"testing"

	"github.com/katalvlaran/pathtrace/glyph"
)

// TestClassifiers runs every predicate over the map alphabet.
func TestClassifiers(t *testing.T) {
	cases := []struct {
		c                    rune
		vertical, horizontal bool
		letter, path         bool
	}{
		{'|', true, false, false, true},
		{'-', false, true, false, true},
		{'+', true, true, false, true},
		{'A', true, true, true, true},
		{'z', true, true, true, true},
		{'x', true, true, true, true},
		{'@', false, false, false, true},
		{' ', false, false, false, false},
		{'1', false, false, false, false},
		{'#', false, false, false, false},
		{'é', false, false, false, false},
		{0, false, false, false, false},
	}
	for _, tc := range cases {
		if got := glyph.IsVerticalConnector(tc.c); got != tc.vertical {
			t.Errorf("IsVerticalConnector(%q) = %v; want %v", tc.c, got, tc.vertical)
		}
		if got := glyph.IsHorizontalConnector(tc.c); got != tc.horizontal {
			t.Errorf("IsHorizontalConnector(%q) = %v; want %v", tc.c, got, tc.horizontal)
		}
		if got := glyph.IsLetter(tc.c); got != tc.letter {
			t.Errorf("IsLetter(%q) = %v; want %v", tc.c, got, tc.letter)
		}
		if got := glyph.IsPathChar(tc.c); got != tc.path {
			t.Errorf("IsPathChar(%q) = %v; want %v", tc.c, got, tc.path)
		}
	}
}
