// Package glyph classifies the characters of a route map.
//
// A route is drawn with a small alphabet:
//
//	@   start marker (exactly one per map)
//	x   end marker
//	-   horizontal connector
//	|   vertical connector
//	+   turn / intersection connector
//	A-z letters, which act as connectors and are collected along the way
//
// Everything else, a space in particular, blocks movement.
package glyph

// Map alphabet.
const (
	Start      = '@'
	End        = 'x'
	Horizontal = '-'
	Vertical   = '|'
	Turn       = '+'
	Blank      = ' '
)

// IsLetter reports whether c is a single ASCII letter.
func IsLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsVerticalConnector reports whether c may be entered by an up or down move.
// The end marker is a letter and so qualifies as well.
func IsVerticalConnector(c rune) bool {
	return c == Vertical || c == Turn || IsLetter(c)
}

// IsHorizontalConnector reports whether c may be entered by a left or right move.
func IsHorizontalConnector(c rune) bool {
	return c == Horizontal || c == Turn || c == End || IsLetter(c)
}

// IsPathChar reports whether c belongs to any corridor: a connector, a letter
// or a marker.
func IsPathChar(c rune) bool {
	switch c {
	case Start, End, Horizontal, Vertical, Turn:
		return true
	}
	return IsLetter(c)
}
