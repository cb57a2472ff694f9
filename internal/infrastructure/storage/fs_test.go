package storage

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:        "abc",
		Seed:      42,
		Grid:      strings.Repeat(".", 81),
		Name:      "blank",
		CreatedAt: 1000,
	}
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "abc", metas[0].ID)
	assert.Equal(t, "blank", metas[0].Name)
	assert.Equal(t, int64(1000), metas[0].CreatedAt)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/does-not-exist")
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
