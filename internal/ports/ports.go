package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Visitor receives a snapshot of each completed solution. The grid is
// passed by value, so the visitor owns its copy; the live grid keeps
// mutating behind it. Returning false aborts the entire search immediately,
// through every outstanding recursion level.
type Visitor func(solution domain.Grid) bool

// SearchOptions selects candidate ordering for one search invocation.
type SearchOptions struct {
	// Randomize permutes each cell's candidates before trying them,
	// turning "find the solution" into "produce a random solution".
	Randomize bool
	// Rand is the source used when Randomize is set; the engine seeds
	// its own if nil.
	Rand *rand.Rand
}

// Searcher enumerates completed assignments of a grid.
type Searcher interface {
	Enumerate(ctx context.Context, g *domain.Grid, opts SearchOptions, visit Visitor) Stats
	Solve(ctx context.Context, g *domain.Grid) (domain.Grid, Stats, bool)
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats)
}

// Designer produces new uniquely-solvable puzzles.
type Designer interface {
	Design(ctx context.Context, rng *rand.Rand) (domain.Grid, Stats, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
