package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/padoca/ordering/internal/domains/catalog/domain"
	catalogports "github.com/padoca/ordering/internal/domains/catalog/ports"
	cartmemory "github.com/padoca/ordering/internal/domains/cart/adapters/memory"
	"github.com/padoca/ordering/internal/domains/cart/domain"
	"github.com/padoca/ordering/internal/domains/cart/ports"
)

type fakeCatalog struct {
	products map[int64]*catalogdomain.Product
}

func newFakeCatalog(products ...*catalogdomain.Product) *fakeCatalog {
	f := &fakeCatalog{products: map[int64]*catalogdomain.Product{}}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int64) (*catalogdomain.Product, error) {
	if p, ok := f.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, catalogports.ErrNotFound
}

func (f *fakeCatalog) ListProducts(_ context.Context) ([]*catalogdomain.Product, error) {
	var list []*catalogdomain.Product
	for _, p := range f.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeCatalog) Stock(_ context.Context, id int64) (int64, error) {
	if p, ok := f.products[id]; ok {
		return p.Stock, nil
	}
	return 0, nil
}

func (f *fakeCatalog) SaveProduct(_ context.Context, p *catalogdomain.Product) (*catalogdomain.Product, error) {
	clone := *p
	f.products[p.ID] = &clone
	return p, nil
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

func (f *fakeCatalog) AdjustStock(_ context.Context, id int64, delta int64) (*catalogdomain.Product, error) {
	p := f.products[id]
	p.Stock += delta
	clone := *p
	return &clone, nil
}

var _ catalogports.Service = (*fakeCatalog)(nil)

func newCartService(catalog catalogports.Service) *Service {
	return NewService(cartmemory.NewStore(), catalog)
}

func TestAddLine_AccumulatesUntilStockCap(t *testing.T) {
	catalog := newFakeCatalog(&catalogdomain.Product{ID: 1, Name: "Pão Francês", UnitPrice: 50, Stock: 5})
	svc := newCartService(catalog)
	ctx := context.Background()

	var view *ports.View
	for i := 0; i < 5; i++ {
		v, err := svc.AddLine(ctx, "cliente-1", 1)
		require.NoError(t, err)
		view = v
	}
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(5), view.Lines[0].Quantity)

	_, err := svc.AddLine(ctx, "cliente-1", 1)
	assert.ErrorIs(t, err, domain.ErrStockLimitReached)

	reconciled, err := svc.Reconcile(ctx, "cliente-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), reconciled.Lines[0].Quantity)
}

func TestAddLine_SoldOutProduct(t *testing.T) {
	catalog := newFakeCatalog(&catalogdomain.Product{ID: 6, Name: "Sonho", UnitPrice: 350, Stock: 0})
	svc := newCartService(catalog)

	_, err := svc.AddLine(context.Background(), "cliente-1", 6)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
}

func TestAddLine_UnknownProduct(t *testing.T) {
	svc := newCartService(newFakeCatalog())

	_, err := svc.AddLine(context.Background(), "cliente-1", 99)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
}

func TestReconcile_StockDropReportsShortfall(t *testing.T) {
	product := &catalogdomain.Product{ID: 2, Name: "Bolo de Chocolate", UnitPrice: 1500, Stock: 3}
	catalog := newFakeCatalog(product)
	svc := newCartService(catalog)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.AddLine(ctx, "cliente-1", 2)
		require.NoError(t, err)
	}
	product.Stock = 1

	view, err := svc.Reconcile(ctx, "cliente-1")
	require.NoError(t, err)
	require.Len(t, view.Shortfalls, 1)
	assert.Equal(t, int64(3), view.Shortfalls[0].Requested)
	assert.Equal(t, int64(1), view.Shortfalls[0].Available)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(1), view.Lines[0].Quantity)

	again, err := svc.Reconcile(ctx, "cliente-1")
	require.NoError(t, err)
	assert.Empty(t, again.Shortfalls)
}

func TestRemoveAndDeleteLine(t *testing.T) {
	catalog := newFakeCatalog(&catalogdomain.Product{ID: 7, Name: "Pão de Queijo", UnitPrice: 100, Stock: 20})
	svc := newCartService(catalog)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.AddLine(ctx, "cliente-1", 7)
		require.NoError(t, err)
	}

	view, err := svc.RemoveLine(ctx, "cliente-1", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.Lines[0].Quantity)

	view, err = svc.DeleteLine(ctx, "cliente-1", 7)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestTotals_InCentavos(t *testing.T) {
	catalog := newFakeCatalog(
		&catalogdomain.Product{ID: 1, Name: "Pão Francês", UnitPrice: 50, Stock: 30},
		&catalogdomain.Product{ID: 2, Name: "Bolo de Chocolate", UnitPrice: 1500, Stock: 7},
	)
	svc := newCartService(catalog)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := svc.AddLine(ctx, "cliente-1", 1)
		require.NoError(t, err)
	}
	view, err := svc.AddLine(ctx, "cliente-1", 2)
	require.NoError(t, err)

	assert.Equal(t, int64(7), view.Totals.Items)
	assert.Equal(t, int64(1800), view.Totals.Amount.Cents())
}
