// Package solver implements the depth-first backtracking search shared by
// solving, uniqueness counting, and puzzle design. One traversal serves all
// three: callers express their termination condition through the visitor's
// boolean return instead of duplicating the recursion.
package solver

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/constraint"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Engine is stateless between calls; the grid it is handed is the only
// shared state, and it is restored exactly on return.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Enumerate walks all completed assignments reachable from g in index
// order, skipping pre-filled cells. Each solution is handed to visit as a
// snapshot; visit returning false stops the whole search. Placements are
// retracted unconditionally on every exit path, so g holds its original
// contents when Enumerate returns. Context cancellation stops the search
// the same way a visitor's false does.
func (e *Engine) Enumerate(ctx context.Context, g *domain.Grid, opts ports.SearchOptions, visit ports.Visitor) ports.Stats {
	start := time.Now()
	rng := opts.Rand
	if opts.Randomize && rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	nodes := 0

	var dfs func(idx int) bool // false = stop signaled
	dfs = func(idx int) bool {
		if ctx.Err() != nil {
			return false
		}
		for idx < domain.GridCells && !g[idx].IsEmpty() {
			idx++
		}
		if idx == domain.GridCells {
			return visit(*g)
		}
		cands := constraint.CandidatesAt(g, idx)
		if opts.Randomize {
			rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
		}
		for _, v := range cands {
			nodes++
			g[idx] = v
			cont := dfs(idx + 1)
			g[idx] = domain.Empty
			if !cont {
				return false
			}
		}
		return true
	}
	dfs(0)
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

// Solve returns the first solution found in deterministic order, and false
// if no completed assignment is reachable. g is left as it was.
func (e *Engine) Solve(ctx context.Context, g *domain.Grid) (domain.Grid, ports.Stats, bool) {
	var sol domain.Grid
	found := false
	st := e.Enumerate(ctx, g, ports.SearchOptions{}, func(s domain.Grid) bool {
		sol = s
		found = true
		return false
	})
	return sol, st, found
}

// CountSolutions counts solutions up to limit and stops there, which
// bounds the cost of uniqueness checks: disproving uniqueness needs only a
// second solution, never the full count.
func (e *Engine) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats) {
	n := 0
	st := e.Enumerate(ctx, g, ports.SearchOptions{}, func(domain.Grid) bool {
		n++
		return n < limit
	})
	return n, st
}
