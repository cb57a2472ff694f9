// Package constraint evaluates row/column/box constraints against a grid.
// All functions are read-only and safe to call concurrently on a grid that
// is not being mutated.
package constraint

import (
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/geometry"
)

// CanPlace reports whether value may be placed at index: true iff no OTHER
// cell in index's row, column, or box holds value. The cell itself is
// excluded, so re-affirming a cell's current value is always legal.
func CanPlace(g *domain.Grid, value domain.Cell, index int) bool {
	for _, groups := range [3][domain.Size]int{
		geometry.RowCells(index),
		geometry.ColCells(index),
		geometry.BoxCells(index),
	} {
		for _, j := range groups {
			if j != index && g[j] == value {
				return false
			}
		}
	}
	return true
}

// usedMask returns a bitmask of values present in index's row, column, and
// box, bit v set for digit v.
func usedMask(g *domain.Grid, index int) uint16 {
	var m uint16
	for _, j := range geometry.RowCells(index) {
		m |= 1 << g[j]
	}
	for _, j := range geometry.ColCells(index) {
		m |= 1 << g[j]
	}
	for _, j := range geometry.BoxCells(index) {
		m |= 1 << g[j]
	}
	return m
}

// CandidatesAt returns the legal values for index in ascending order. A
// filled cell yields the singleton of its current value. An out-of-range
// index yields nil; reads are permissive where writes are not.
func CandidatesAt(g *domain.Grid, index int) []domain.Cell {
	if index < 0 || index >= domain.GridCells {
		return nil
	}
	if !g[index].IsEmpty() {
		return []domain.Cell{g[index]}
	}
	used := usedMask(g, index)
	out := make([]domain.Cell, 0, domain.Size)
	for v := domain.Cell(1); v <= 9; v++ {
		if used&(1<<v) == 0 {
			out = append(out, v)
		}
	}
	return out
}

// Conflicts scans all 27 groups and returns the coordinates of every cell
// whose nonzero value duplicates an earlier one in the same group. An empty
// result means the grid satisfies the group invariant.
func Conflicts(g *domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	for _, group := range geometry.Groups() {
		var m uint16
		for _, j := range group {
			v := g[j]
			if v.IsEmpty() {
				continue
			}
			bit := uint16(1) << v
			if m&bit != 0 {
				r, c := domain.Coord(j)
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	return conf
}
