// Package pathtrace follows routes drawn on ASCII maps and reports the
// letters collected along the way.
//
// 🚀 What is pathtrace?
//
//	A small, dependency-light toolkit that brings together:
//		• Grids: rectangular rune grids with bounds checks and visited sets
//		• Glyphs: classification of markers, connectors and letters
//		• Route finding: start-to-end walks with gap intersection jumps
//		• Samples: an embedded YAML catalogue of maps with expected traces
//		• Rendering: terminal-styled views of a traced route
//
// Under the hood, everything is organized under these subpackages:
//
//	glyph/    character classes of a route map
//	grid/     Grid, Position, Direction, Move and VisitedSet
//	pathfind/ FindStart, NextDirection, NextJump, Walk, Find and FindAll
//	maps/     map file parsing and the sample catalogue
//	render/   lipgloss views of a Result
//
// and one command:
//
//	cmd/pathtrace  trace map files or catalogue samples from the shell
//
// Quick ASCII example:
//
//	@---A---+
//	        |
//	x-B-+   C
//	    |   |
//	    +---+
//
// traces to letters "ACB" and path "@---A---+|C|+---+|+-B-x".
//
//	go install github.com/katalvlaran/pathtrace/cmd/pathtrace@latest
package pathtrace
