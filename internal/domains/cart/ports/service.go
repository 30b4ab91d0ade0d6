package ports

import (
	"context"

	"github.com/padoca/ordering/internal/domains/cart/domain"
)

// View is the cart state handed to presentation code: the lines after the
// latest reconciliation, the findings of that pass, and the derived totals.
type View struct {
	Lines      []domain.Line
	Shortfalls []domain.Shortfall
	Totals     domain.Totals
}

// Service keeps one cart per customer consistent with the catalog.
type Service interface {
	AddLine(ctx context.Context, customerID string, productID int64) (*View, error)
	RemoveLine(ctx context.Context, customerID string, productID int64) (*View, error)
	DeleteLine(ctx context.Context, customerID string, productID int64) (*View, error)
	// Reconcile clamps every line to the available stock and reports the
	// shortfalls. It is the trigger used when the cart becomes visible and
	// as the last-chance check before checkout.
	Reconcile(ctx context.Context, customerID string) (*View, error)
	Clear(ctx context.Context, customerID string) error
}
