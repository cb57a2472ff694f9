package domain

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint is one revealed cell from the solved grid.
type Hint struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Value Cell `json:"value"`
}

// Puzzle is a persisted puzzle with metadata. The grid is stored in its
// text encoding so saved files stay readable and diffable.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Grid      string `json:"grid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
