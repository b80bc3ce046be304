package catalog

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/pkg/apperr"
	"katalog/pkg/book"
	"katalog/pkg/book/memory"
	"katalog/pkg/logger"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	return New(memory.New(), logger.New(&bytes.Buffer{}, logger.LevelDebug, "test", nil))
}

func TestCatalog_Create_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		b, err := c.Create(ctx, "Dune", "Herbert", 1)
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestCatalog_Create_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	_, err := c.Create(ctx, "", "Herbert", 1)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = c.Create(ctx, "Dune", "", 1)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = c.Create(ctx, "Dune", "Herbert", -1)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, count, err := c.List(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCatalog_Create_UsesIDGenerator(t *testing.T) {
	c := New(memory.New(), logger.New(&bytes.Buffer{}, logger.LevelInfo, "test", nil),
		WithIDGenerator(func() string { return "fixed" }))

	b, err := c.Create(context.Background(), "Dune", "Herbert", 1)
	require.NoError(t, err)
	assert.Equal(t, "fixed", b.ID)

	_, err = c.Create(context.Background(), "Dune", "Herbert", 1)
	assert.ErrorIs(t, err, book.ErrDuplicateID)
}

func TestCatalog_Get(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	created, err := c.Create(ctx, "Dune", "Herbert", 4)
	require.NoError(t, err)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "Buku tidak ditemukan")
}

func TestCatalog_List_FiltersCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	dune, err := c.Create(ctx, "Dune", "Herbert", 1)
	require.NoError(t, err)
	foundation, err := c.Create(ctx, "Foundation", "Asimov", 1)
	require.NoError(t, err)

	items, count, err := c.List(ctx, "dune")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []book.Book{dune}, items)

	items, count, err = c.List(ctx, "ASIMOV")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []book.Book{foundation}, items)

	items, count, err = c.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []book.Book{dune, foundation}, items)

	items, count, err = c.List(ctx, "tolkien")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCatalog_AdjustStock(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		change    book.StockChange
		wantStock int
		wantKind  error
	}{
		{name: "set absolute", change: book.SetAbsolute(20), wantStock: 20},
		{name: "set zero", change: book.SetAbsolute(0), wantStock: 0},
		{name: "add positive delta", change: book.AddDelta(5), wantStock: 15},
		{name: "remove to zero", change: book.AddDelta(-10), wantStock: 0},
		{name: "negative absolute", change: book.SetAbsolute(-1), wantStock: 10, wantKind: apperr.ErrValidation},
		{name: "delta below zero", change: book.AddDelta(-11), wantStock: 10, wantKind: apperr.ErrInvalidState},
		{name: "no change", change: book.StockChange{}, wantStock: 10, wantKind: apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCatalog(t)
			b, err := c.Create(ctx, "Dune", "Herbert", 10)
			require.NoError(t, err)

			updated, err := c.AdjustStock(ctx, b.ID, tt.change)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStock, updated.Stock)
			}

			got, err := c.Get(ctx, b.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, got.Stock)
		})
	}
}

func TestCatalog_AdjustStock_UnknownBook(t *testing.T) {
	_, err := newCatalog(t).AdjustStock(context.Background(), "missing", book.AddDelta(1))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCatalog_AdjustStock_ConcurrentDecrementsNeverOversell(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	b, err := c.Create(ctx, "Dune", "Herbert", 10)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.AdjustStock(ctx, b.ID, book.AddDelta(-1)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := c.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 0, got.Stock)
}
