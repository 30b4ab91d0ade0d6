package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
)

func newOrder(t *testing.T, id int64) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(id, "#123", "cliente-1", time.Now(),
		[]cartdomain.Line{{ProductID: 1, Name: "Pão Francês", UnitPrice: 50, Quantity: 2}}, domain.PaymentCash)
	require.NoError(t, err)
	return order
}

func TestLedger_AppendIsNewestFirst(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, newOrder(t, 1)))
	require.NoError(t, ledger.Append(ctx, newOrder(t, 2)))
	require.NoError(t, ledger.Append(ctx, newOrder(t, 3)))

	list, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(1), list[2].ID)
}

func TestLedger_GetAndUpdate(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()
	require.NoError(t, ledger.Append(ctx, newOrder(t, 1)))

	order, err := ledger.Get(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, order.Advance())
	require.NoError(t, ledger.Update(ctx, order))

	updated, err := ledger.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)

	_, err = ledger.Get(ctx, 99)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, ledger.Update(ctx, newOrder(t, 99)), ports.ErrNotFound)
}

func TestLedger_ClonesOnReadAndWrite(t *testing.T) {
	ledger := NewLedger()
	ctx := context.Background()
	original := newOrder(t, 1)
	require.NoError(t, ledger.Append(ctx, original))

	// Mutations on either side of the boundary must not leak through.
	original.Lines[0].Quantity = 99
	stored, err := ledger.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Lines[0].Quantity)

	stored.Status = domain.StatusFinalized
	fresh, err := ledger.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReceived, fresh.Status)
}

func TestSnapshotStore_RoundTripPreservesOrdering(t *testing.T) {
	store := NewSnapshotStore()
	ledger := NewLedger()
	ctx := context.Background()

	for id := int64(1); id <= 3; id++ {
		require.NoError(t, ledger.Append(ctx, newOrder(t, id)))
	}
	orders, err := ledger.List(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "pedidos", orders))

	restored, err := store.Load(ctx, "pedidos")
	require.NoError(t, err)
	require.Len(t, restored, 3)
	assert.Equal(t, int64(3), restored[0].ID)
	assert.Equal(t, int64(1), restored[2].ID)
}

func TestSnapshotStore_MissingKey(t *testing.T) {
	store := NewSnapshotStore()
	restored, err := store.Load(context.Background(), "ausente")
	require.NoError(t, err)
	assert.Nil(t, restored)
}
