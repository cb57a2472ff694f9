package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/constraint"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/solver"
)

func TestDesignProducesSymmetricUniquePuzzles(t *testing.T) {
	engine := solver.NewEngine()
	g := NewSymmetric(engine)

	for _, seed := range []int64{1, 12345, 987654321} {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		puz, st, err := g.Design(ctx, rand.New(rand.NewSource(seed)))
		require.NoErrorf(t, err, "seed %d (nodes=%d dur=%v)", seed, st.Nodes, st.Duration)

		// constraint-clean and within the legal givens range
		assert.Empty(t, constraint.Conflicts(&puz))
		givens := puz.Givens()
		assert.GreaterOrEqual(t, givens, 17, "fewer givens cannot be unique")
		assert.Less(t, givens, domain.GridCells)

		// holes come in symmetric pairs (center cell is self-paired)
		for i := 0; i < domain.GridCells; i++ {
			j := domain.GridCells - 1 - i
			assert.Equalf(t, puz[i].IsEmpty(), puz[j].IsEmpty(),
				"seed %d: cells %d and %d must be holed together", seed, i, j)
		}

		// exactly one solution
		n, _ := engine.CountSolutions(ctx, &puz, 2)
		assert.Equalf(t, 1, n, "seed %d", seed)
	}
}

func TestDesignIsSeedStable(t *testing.T) {
	engine := solver.NewEngine()
	g := NewSymmetric(engine)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, _, err := g.Design(ctx, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, _, err := g.Design(ctx, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDesignCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewSymmetric(solver.NewEngine())
	_, _, err := g.Design(ctx, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, context.Canceled)
}
