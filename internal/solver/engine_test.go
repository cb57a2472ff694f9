package solver

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/constraint"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// A classic, solvable puzzle with a single known solution.
const (
	classic         = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

// Uniquely solvable (verified by CountSolutions below).
const scenario = ".2....5938..5..46.94..6...8..2.3.....6..8.73.7..2.........4.38..7....6..........5"

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func mustGrid(t *testing.T, enc string) domain.Grid {
	t.Helper()
	g, err := domain.Decode(enc)
	require.NoError(t, err)
	return g
}

func TestSolveClassic(t *testing.T) {
	g := mustGrid(t, classic)
	before := g
	sol, st, ok := NewEngine().Solve(testCtx(t), &g)
	require.True(t, ok, "nodes=%d dur=%v", st.Nodes, st.Duration)
	assert.Equal(t, classicSolution, sol.Encode())
	assert.True(t, sol.Complete())
	assert.Empty(t, constraint.Conflicts(&sol))
	// the searched grid is restored exactly
	assert.Equal(t, before, g)
}

func TestSolveUnsolvable(t *testing.T) {
	// the scenario puzzle's unique solution has 1 at index 0; 6 passes the
	// local constraint check there but makes the puzzle unsolvable
	g := mustGrid(t, scenario)
	require.True(t, constraint.CanPlace(&g, 6, 0))
	g[0] = 6
	before := g
	_, _, ok := NewEngine().Solve(testCtx(t), &g)
	assert.False(t, ok)
	assert.Equal(t, before, g)
}

func TestSolveScenario(t *testing.T) {
	g := mustGrid(t, scenario)
	sol, _, ok := NewEngine().Solve(testCtx(t), &g)
	require.True(t, ok)
	assert.Equal(t, "126478593837592461945361278412937856569184732783256914251649387374815629698723145", sol.Encode())
}

func TestCountSolutionsUnique(t *testing.T) {
	g := mustGrid(t, scenario)
	n, _ := NewEngine().CountSolutions(testCtx(t), &g, 2)
	assert.Equal(t, 1, n)
}

func TestEnumerateEarlyStop(t *testing.T) {
	// only the first row given: a huge solution space
	g := mustGrid(t, "123456789"+strings.Repeat(".", 72))
	before := g
	seen := 0
	NewEngine().Enumerate(testCtx(t), &g, ports.SearchOptions{}, func(sol domain.Grid) bool {
		assert.True(t, sol.Complete())
		assert.Empty(t, constraint.Conflicts(&sol))
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
	assert.Equal(t, before, g)
}

func TestEnumerateNeverRevisitsGivens(t *testing.T) {
	g := mustGrid(t, classic)
	NewEngine().Enumerate(testCtx(t), &g, ports.SearchOptions{}, func(sol domain.Grid) bool {
		for i := range g {
			if !g[i].IsEmpty() {
				assert.Equal(t, g[i], sol[i])
			}
		}
		return false
	})
}

func TestRandomizedSolveIsValidAndSeedStable(t *testing.T) {
	solveRandom := func(seed int64) domain.Grid {
		var g domain.Grid
		var out domain.Grid
		rng := rand.New(rand.NewSource(seed))
		NewEngine().Enumerate(testCtx(t), &g, ports.SearchOptions{Randomize: true, Rand: rng}, func(sol domain.Grid) bool {
			out = sol
			return false
		})
		return out
	}
	a := solveRandom(1)
	require.True(t, a.Complete())
	assert.Empty(t, constraint.Conflicts(&a))

	b := solveRandom(1)
	assert.Equal(t, a, b, "same seed must reproduce the same solution")

	c := solveRandom(2)
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestEnumerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := mustGrid(t, classic)
	before := g
	seen := 0
	st := NewEngine().Enumerate(ctx, &g, ports.SearchOptions{}, func(domain.Grid) bool {
		seen++
		return true
	})
	assert.Zero(t, seen)
	assert.Zero(t, st.Nodes)
	assert.Equal(t, before, g)
}
