package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padoca/ordering/internal/domains/catalog/adapters/memory"
	"github.com/padoca/ordering/internal/domains/catalog/domain"
	"github.com/padoca/ordering/internal/domains/catalog/ports"
)

func TestService_StockUnknownProductIsZero(t *testing.T) {
	service := NewService(memory.NewSeededRepository())

	stock, err := service.Stock(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, stock)
}

func TestService_StockKnownProduct(t *testing.T) {
	service := NewService(memory.NewSeededRepository())

	stock, err := service.Stock(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stock)
}

func TestService_SaveProductValidates(t *testing.T) {
	service := NewService(memory.NewRepository())
	ctx := context.Background()

	_, err := service.SaveProduct(ctx, &domain.Product{Name: "", UnitPrice: 100, Stock: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	saved, err := service.SaveProduct(ctx, &domain.Product{Name: "Broa de Milho", Category: domain.CategoryPadaria, UnitPrice: 320, Stock: 9})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
}

func TestService_AdjustStock(t *testing.T) {
	service := NewService(memory.NewSeededRepository())
	ctx := context.Background()

	product, err := service.AdjustStock(ctx, 6, -4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), product.Stock)

	_, err = service.AdjustStock(ctx, 6, -3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.AdjustStock(ctx, 999, 1)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestService_DeleteProduct(t *testing.T) {
	service := NewService(memory.NewSeededRepository())
	ctx := context.Background()

	require.NoError(t, service.DeleteProduct(ctx, 10))
	_, err := service.GetProduct(ctx, 10)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, service.DeleteProduct(ctx, 10), ports.ErrNotFound)
}
