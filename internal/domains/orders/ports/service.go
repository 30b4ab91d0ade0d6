package ports

import (
	"context"
	"fmt"

	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
	"github.com/padoca/ordering/internal/domains/orders/domain"
)

// StockConflictError aborts a checkout whose last-chance reconciliation
// found shortfalls. The report must be surfaced to the caller; the checkout
// is never silently adjusted after the customer committed to a total.
type StockConflictError struct {
	Report cartdomain.Report
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("checkout aborted: stock changed for %d cart line(s)", len(e.Report.Shortfalls))
}

// CheckoutInput carries the checkout command for one customer cart.
type CheckoutInput struct {
	CustomerID string
	Payment    domain.Payment
}

// Service exposes the order lifecycle use cases.
type Service interface {
	// Checkout runs the authoritative last-chance reconciliation, builds an
	// immutable order from the cart and appends it to the ledger. Any
	// shortfall aborts the checkout with a StockConflictError.
	Checkout(ctx context.Context, input CheckoutInput) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, id int64) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
