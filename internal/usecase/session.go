// Package usecase holds the editing surface: one live grid plus the
// operations external collaborators (CLI, HTTP, tests) call on it.
package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"svw.info/sudoku-engine/internal/constraint"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Session owns a single mutable grid. A whole-session mutex serializes
// access so concurrent hosts can share one instance; the engine itself
// assumes one logical caller at a time.
type Session struct {
	mu       sync.Mutex
	grid     domain.Grid
	searcher ports.Searcher
	designer ports.Designer
	rng      *rand.Rand
}

// NewSession wires a session over the given searcher and designer. rng is
// used for hint selection and design; a time-seeded source is used if nil.
func NewSession(s ports.Searcher, d ports.Designer, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{searcher: s, designer: d, rng: rng}
}

// Reset clears all 81 cells, discarding any prior puzzle.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = domain.Grid{}
}

// Import replaces the grid from an 81-character encoding. Characters other
// than '1'-'9' load as empty. It fails, leaving the grid untouched, if the
// length is wrong or any filled cell duplicates a value in its row, column,
// or box. On success the grid is replaced atomically.
func (s *Session) Import(text string) bool {
	g, err := domain.Decode(text)
	if err != nil {
		return false
	}
	for i := 0; i < domain.GridCells; i++ {
		if g[i].IsEmpty() {
			continue
		}
		if !constraint.CanPlace(&g, g[i], i) {
			return false
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g
	return true
}

// Export serializes the current grid; empty cells render as '.'.
func (s *Session) Export() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Encode()
}

// Add sets one cell. Value 0 always succeeds and clears the cell (the undo
// path). A digit succeeds iff no other cell in the index's groups holds it;
// otherwise the grid is unchanged. Success checks local constraints only,
// never solvability.
func (s *Session) Add(value domain.Cell, index int) bool {
	if index < 0 || index >= domain.GridCells || !value.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == domain.Empty {
		s.grid[index] = domain.Empty
		return true
	}
	if !constraint.CanPlace(&s.grid, value, index) {
		return false
	}
	s.grid[index] = value
	return true
}

// State returns the candidate set of every cell: filled cells yield the
// singleton of their value, empty cells yield 1-9 minus conflicts.
func (s *Session) State() [][]domain.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]domain.Cell, domain.GridCells)
	for i := range out {
		out[i] = constraint.CandidatesAt(&s.grid, i)
	}
	return out
}

// Solve runs the search deterministically from the current state. On
// success the live grid holds the solution and its encoding is returned;
// otherwise false, with the grid unchanged.
func (s *Session) Solve(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sol, _, ok := s.searcher.Solve(ctx, &s.grid)
	if !ok {
		return "", false
	}
	s.grid = sol
	return sol.Encode(), true
}

// Hint solves transiently, picks one cell at random where the live grid
// differs from the solution, commits it, and returns its coordinates and
// value. False if the puzzle is unsolvable or already complete.
func (s *Session) Hint(ctx context.Context) (domain.Hint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sol, _, ok := s.searcher.Solve(ctx, &s.grid)
	if !ok {
		return domain.Hint{}, false
	}
	diff := make([]int, 0, domain.GridCells)
	for i := range s.grid {
		if s.grid[i] != sol[i] {
			diff = append(diff, i)
		}
	}
	if len(diff) == 0 {
		return domain.Hint{}, false
	}
	idx := diff[s.rng.Intn(len(diff))]
	s.grid[idx] = sol[idx]
	r, c := domain.Coord(idx)
	return domain.Hint{Row: r, Col: c, Value: sol[idx]}, true
}

// FindAll enumerates solutions from the current state, handing each to
// visit; the visitor drives the stopping condition. The grid is restored
// when the enumeration returns.
func (s *Session) FindAll(ctx context.Context, visit ports.Visitor) ports.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searcher.Enumerate(ctx, &s.grid, ports.SearchOptions{}, visit)
}

var errNotConfigured = errors.New("session dependency not configured")

// Design generates a fresh symmetric, uniquely-solvable puzzle, loads it
// as the live grid, and returns its encoding.
func (s *Session) Design(ctx context.Context) (string, error) {
	if s.designer == nil {
		return "", errNotConfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, _, err := s.designer.Design(ctx, s.rng)
	if err != nil {
		return "", err
	}
	s.grid = g
	return g.Encode(), nil
}
