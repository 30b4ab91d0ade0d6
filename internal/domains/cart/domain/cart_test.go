package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStock(stock map[int64]int64) func(int64) int64 {
	return func(id int64) int64 { return stock[id] }
}

func TestAdd_CapsAtStock(t *testing.T) {
	cart := &Cart{}

	for i := 0; i < 5; i++ {
		require.NoError(t, cart.Add(1, "Pão Francês", 50, 5))
	}
	err := cart.Add(1, "Pão Francês", 50, 5)
	assert.ErrorIs(t, err, ErrStockLimitReached)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(5), cart.Lines[0].Quantity)
}

func TestAdd_OutOfStock(t *testing.T) {
	cart := &Cart{}
	err := cart.Add(2, "Bolo de Chocolate", 1500, 0)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, cart.Empty())
}

func TestRemove_DropsLineAtZero(t *testing.T) {
	cart := &Cart{}
	require.NoError(t, cart.Add(1, "Pão Francês", 50, 5))
	require.NoError(t, cart.Add(1, "Pão Francês", 50, 5))

	cart.Remove(1)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].Quantity)

	cart.Remove(1)
	assert.True(t, cart.Empty())
}

func TestDelete_Unconditional(t *testing.T) {
	cart := &Cart{}
	for i := 0; i < 3; i++ {
		require.NoError(t, cart.Add(4, "Torta de Frango", 800, 13))
	}
	cart.Delete(4)
	assert.True(t, cart.Empty())
}

func TestReconcile_ClampsAndReportsShortfall(t *testing.T) {
	cart := &Cart{Lines: []Line{{ProductID: 2, Name: "Bolo de Chocolate", UnitPrice: 1500, Quantity: 3}}}

	report := cart.Reconcile(fixedStock(map[int64]int64{2: 1}))
	require.Len(t, report.Shortfalls, 1)
	assert.Equal(t, int64(3), report.Shortfalls[0].Requested)
	assert.Equal(t, int64(1), report.Shortfalls[0].Available)
	assert.False(t, report.Shortfalls[0].OutOfStock)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].Quantity)
}

func TestReconcile_DropsSoldOutLines(t *testing.T) {
	cart := &Cart{Lines: []Line{
		{ProductID: 6, Name: "Sonho", UnitPrice: 350, Quantity: 2},
		{ProductID: 7, Name: "Pão de Queijo", UnitPrice: 100, Quantity: 4},
	}}

	report := cart.Reconcile(fixedStock(map[int64]int64{6: 0, 7: 20}))
	require.Len(t, report.Shortfalls, 1)
	assert.True(t, report.Shortfalls[0].OutOfStock)
	assert.Equal(t, int64(6), report.Shortfalls[0].ProductID)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(7), cart.Lines[0].ProductID)
}

func TestReconcile_Idempotent(t *testing.T) {
	cart := &Cart{Lines: []Line{
		{ProductID: 2, Name: "Bolo de Chocolate", UnitPrice: 1500, Quantity: 3},
		{ProductID: 6, Name: "Sonho", UnitPrice: 350, Quantity: 1},
	}}
	stock := fixedStock(map[int64]int64{2: 1, 6: 0})

	first := cart.Reconcile(stock)
	require.Len(t, first.Shortfalls, 2)

	second := cart.Reconcile(stock)
	assert.True(t, second.Clean())
	assert.Equal(t, first.Lines, second.Lines)
}

func TestReconcile_QuantityNeverExceedsStock(t *testing.T) {
	cart := &Cart{Lines: []Line{
		{ProductID: 1, Name: "Pão Francês", UnitPrice: 50, Quantity: 40},
		{ProductID: 9, Name: "Suco Natural", UnitPrice: 600, Quantity: 8},
	}}
	stock := map[int64]int64{1: 30, 9: 8}

	cart.Reconcile(fixedStock(stock))
	for _, line := range cart.Lines {
		assert.LessOrEqual(t, line.Quantity, stock[line.ProductID])
	}
}

func TestTotals(t *testing.T) {
	cart := &Cart{Lines: []Line{
		{ProductID: 1, Name: "Pão Francês", UnitPrice: 50, Quantity: 6},
		{ProductID: 2, Name: "Bolo de Chocolate", UnitPrice: 1500, Quantity: 1},
	}}

	totals := cart.Totals()
	assert.Equal(t, int64(7), totals.Items)
	assert.Equal(t, int64(1800), totals.Amount.Cents())
}
