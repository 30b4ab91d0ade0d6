package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductValidation(t *testing.T) {
	product, err := NewProduct(1, "Pão Francês", CategorySalgados, 50, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), product.Stock)

	_, err = NewProduct(1, "  ", CategorySalgados, 50, 30)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct(1, "Pão Francês", CategorySalgados, 0, 30)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct(1, "Pão Francês", CategorySalgados, 50, -1)
	assert.ErrorIs(t, err, ErrNegativeStock)
}

func TestAdjustStock(t *testing.T) {
	product, err := NewProduct(6, "Sonho", CategoryDoces, 350, 6)
	require.NoError(t, err)

	require.NoError(t, product.AdjustStock(-4))
	assert.Equal(t, int64(2), product.Stock)

	// Going below zero is rejected and leaves the quantity unchanged.
	assert.ErrorIs(t, product.AdjustStock(-3), ErrNegativeStock)
	assert.Equal(t, int64(2), product.Stock)

	require.NoError(t, product.AdjustStock(10))
	assert.Equal(t, int64(12), product.Stock)
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "local-pizza", CategorySalgados.Icon())
	assert.Equal(t, "cake", CategoryDoces.Icon())
	assert.Equal(t, "local-drink", CategoryBebidas.Icon())
	assert.Equal(t, "bakery-dining", CategoryPadaria.Icon())
	assert.Equal(t, "fastfood", Category("outros").Icon())
}
