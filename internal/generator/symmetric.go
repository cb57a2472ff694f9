// Package generator designs new puzzles: a random full solution is carved
// down by clearing 180-degree symmetric cell pairs, keeping only removals
// that provably preserve solution uniqueness.
package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// SymmetricGenerator wires a designer that uses the given searcher both to
// produce the initial solution and for uniqueness checks.
type SymmetricGenerator struct {
	Searcher ports.Searcher
}

func NewSymmetric(s ports.Searcher) *SymmetricGenerator {
	return &SymmetricGenerator{Searcher: s}
}

// Design produces a uniquely-solvable puzzle whose holes come in symmetric
// pairs (idx, 80-idx). The working grid has a unique solution at every
// iteration boundary: a pair of holes is committed only after the search
// fails to find a second solution without them.
func (g *SymmetricGenerator) Design(ctx context.Context, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	nodes := 0

	// 1) full random solution from an empty grid
	var grid, full domain.Grid
	found := false
	st := g.Searcher.Enumerate(ctx, &grid, ports.SearchOptions{Randomize: true, Rand: rng}, func(s domain.Grid) bool {
		full = s
		found = true
		return false
	})
	nodes += st.Nodes
	if !found {
		// An empty grid always completes; only cancellation gets here.
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
	}

	// 2) visit every cell once, in random order
	order := make([]int, domain.GridCells)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	grid = full
	for len(order) > 0 {
		idx1 := order[0]
		order = order[1:]
		idx2 := domain.GridCells - 1 - idx1

		snap := grid
		grid[idx1] = domain.Empty
		grid[idx2] = domain.Empty

		n, st := g.Searcher.CountSolutions(ctx, &grid, 2)
		nodes += st.Nodes
		if n == 1 {
			snap[idx1] = domain.Empty
			snap[idx2] = domain.Empty
		}
		// idx2 was decided jointly with idx1 and must never come up again.
		if idx2 != idx1 {
			for i, p := range order {
				if p == idx2 {
					order = append(order[:i], order[i+1:]...)
					break
				}
			}
		}
		grid = snap
	}

	if err := ctx.Err(); err != nil {
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
