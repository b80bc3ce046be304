package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()

	o := order.Order{ID: "1", BookID: "b-1", Qty: 2, CustomerName: "Budi", Status: order.StatusPending}
	require.NoError(t, repo.Create(ctx, o))
	assert.ErrorIs(t, repo.Create(ctx, o), order.ErrDuplicateID)

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, o, got)

	o.Status = order.StatusConfirmed
	require.NoError(t, repo.Update(ctx, o))

	got, err = repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, got.Status)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, order.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, order.Order{ID: "missing"}), order.ErrNotFound)
}
