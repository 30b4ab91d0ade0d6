package domain

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
)

func sampleLines() []cartdomain.Line {
	return []cartdomain.Line{
		{ProductID: 1, Name: "Pão Francês", UnitPrice: 50, Quantity: 6},
		{ProductID: 2, Name: "Bolo de Chocolate", UnitPrice: 1500, Quantity: 1},
	}
}

func TestNewOrder_SnapshotsLinesAndTotal(t *testing.T) {
	lines := sampleLines()
	order, err := NewOrder(1, "#123", "cliente-1", time.Now(), lines, PaymentPix)
	require.NoError(t, err)

	assert.Equal(t, StatusReceived, order.Status)
	assert.Equal(t, int64(1800), order.Total.Cents())

	// Mutating the source slice must not reach into the snapshot.
	lines[0].Quantity = 99
	assert.Equal(t, int64(6), order.Lines[0].Quantity)
}

func TestNewOrder_EmptyCart(t *testing.T) {
	_, err := NewOrder(1, "#123", "cliente-1", time.Now(), nil, PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewOrder_MissingPayment(t *testing.T) {
	_, err := NewOrder(1, "#123", "cliente-1", time.Now(), sampleLines(), "")
	assert.ErrorIs(t, err, ErrNoPaymentMethod)

	_, err = NewOrder(1, "#123", "cliente-1", time.Now(), sampleLines(), "cheque")
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestOrder_AdvanceToFinalized(t *testing.T) {
	order, err := NewOrder(1, "#123", "cliente-1", time.Now(), sampleLines(), PaymentCard)
	require.NoError(t, err)

	for _, want := range []Status{StatusPreparing, StatusReady, StatusFinalized} {
		require.NoError(t, order.Advance())
		assert.Equal(t, want, order.Status)
	}

	err = order.Advance()
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Equal(t, StatusFinalized, order.Status)
}

func TestOrder_CancelOnlyFromReceived(t *testing.T) {
	order, err := NewOrder(1, "#123", "cliente-1", time.Now(), sampleLines(), PaymentCash)
	require.NoError(t, err)
	require.NoError(t, order.Cancel())
	assert.Equal(t, StatusCancelled, order.Status)

	advanced, err := NewOrder(2, "#124", "cliente-1", time.Now(), sampleLines(), PaymentCash)
	require.NoError(t, err)
	require.NoError(t, advanced.Advance())
	assert.ErrorIs(t, advanced.Cancel(), ErrNotCancellable)
}

func TestOrder_TransitionToRejectsSkips(t *testing.T) {
	order, err := NewOrder(1, "#123", "cliente-1", time.Now(), sampleLines(), PaymentCash)
	require.NoError(t, err)

	assert.ErrorIs(t, order.TransitionTo(StatusReady), ErrInvalidTransition)
	assert.Equal(t, StatusReceived, order.Status)

	require.NoError(t, order.TransitionTo(StatusPreparing))
	assert.ErrorIs(t, order.TransitionTo(StatusReceived), ErrInvalidTransition)
}

func TestIDSource_StrictlyIncreasing(t *testing.T) {
	ids := NewIDSource()
	var last int64
	for i := 0; i < 100; i++ {
		id := ids.Next()
		assert.Greater(t, id, last)
		last = id
	}
}

func TestNewOrderNumber_Shape(t *testing.T) {
	for i := 0; i < 50; i++ {
		number := NewOrderNumber()
		require.True(t, strings.HasPrefix(number, "#"))
		n, err := strconv.Atoi(number[1:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 999)
	}
}
