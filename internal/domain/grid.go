package domain

import (
	"errors"
	"fmt"
)

// Grid dimensions.
const (
	Size      = 9
	GridCells = Size * Size // 81
)

// Empty is the value of an unfilled cell.
const Empty Cell = 0

// Cell holds a single grid value: Empty, or a digit 1-9. The named type
// keeps "no value" from being confused with a real digit at API boundaries.
type Cell uint8

// IsEmpty reports whether the cell is unfilled.
func (c Cell) IsEmpty() bool { return c == Empty }

// Valid reports whether the cell holds Empty or a digit 1-9.
func (c Cell) Valid() bool { return c <= 9 }

// Grid is one 9x9 puzzle, 81 cells in row-major order. It is a value type;
// assignment copies the whole grid, which is what search snapshots rely on.
type Grid [GridCells]Cell

// Coord converts a linear index to row/column.
func Coord(index int) (row, col int) { return index / Size, index % Size }

// Index converts row/column to a linear index.
func Index(row, col int) int { return row*Size + col }

// Complete reports whether every cell is filled.
func (g *Grid) Complete() bool {
	for _, c := range g {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Givens counts filled cells.
func (g *Grid) Givens() int {
	n := 0
	for _, c := range g {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Encode serializes the grid as an 81-character string, row-major, digits
// for filled cells and '.' for empty ones. This is the only wire format.
func (g *Grid) Encode() string {
	buf := make([]byte, GridCells)
	for i, c := range g {
		if c.IsEmpty() {
			buf[i] = '.'
		} else {
			buf[i] = '0' + byte(c)
		}
	}
	return string(buf)
}

func (g Grid) String() string { return g.Encode() }

// ErrBadLength rejects encodings that are not exactly 81 characters.
var ErrBadLength = errors.New("grid encoding must be exactly 81 characters")

// Decode parses an 81-character encoding. Characters outside '1'-'9' are
// treated as empty cells; only the length is validated here. Constraint
// validity is the caller's concern.
func Decode(text string) (Grid, error) {
	var g Grid
	if len(text) != GridCells {
		return g, fmt.Errorf("%w: got %d", ErrBadLength, len(text))
	}
	for i := 0; i < GridCells; i++ {
		if ch := text[i]; ch >= '1' && ch <= '9' {
			g[i] = Cell(ch - '0')
		}
	}
	return g, nil
}
