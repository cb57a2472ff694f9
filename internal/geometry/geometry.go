// Package geometry holds the static index maps between linear cell
// positions and their row, column, and 3x3 box groupings. Everything here
// is computed once at init and never mutated; indices are assumed valid
// (0..80) and misuse panics rather than being papered over.
package geometry

import "svw.info/sudoku-engine/internal/domain"

// GroupCount is rows + columns + boxes.
const GroupCount = 3 * domain.Size

var (
	rows  [domain.Size][domain.Size]int
	cols  [domain.Size][domain.Size]int
	boxes [domain.Size][domain.Size]int
)

func init() {
	for r := 0; r < domain.Size; r++ {
		for j := 0; j < domain.Size; j++ {
			rows[r][j] = r*domain.Size + j
			cols[r][j] = j*domain.Size + r
		}
	}
	for i := 0; i < domain.GridCells; i++ {
		b := BoxOf(i)
		boxes[b][boxSlot(i)] = i
	}
}

// boxSlot is the position of a cell within its own box, 0..8.
func boxSlot(index int) int {
	r, c := domain.Coord(index)
	return (r%3)*3 + c%3
}

// BoxOf returns the box identifier (0..8) containing index.
func BoxOf(index int) int {
	r, c := domain.Coord(index)
	return (c/3)*3 + r/3
}

// RowCells returns the 9 cell indices of index's row.
func RowCells(index int) [domain.Size]int { return rows[index/domain.Size] }

// ColCells returns the 9 cell indices of index's column.
func ColCells(index int) [domain.Size]int { return cols[index%domain.Size] }

// BoxCells returns the 9 cell indices of the box containing index.
func BoxCells(index int) [domain.Size]int { return boxes[BoxOf(index)] }

// Groups returns all 27 groups: 9 rows, then 9 columns, then 9 boxes.
// The backing arrays are shared; callers must not modify them.
func Groups() [GroupCount][domain.Size]int {
	var out [GroupCount][domain.Size]int
	copy(out[0:], rows[:])
	copy(out[domain.Size:], cols[:])
	copy(out[2*domain.Size:], boxes[:])
	return out
}
