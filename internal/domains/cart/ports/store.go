package ports

import (
	"context"

	"github.com/padoca/ordering/internal/domains/cart/domain"
)

// Store holds the cart for each customer. A missing cart reads as empty.
type Store interface {
	Get(ctx context.Context, customerID string) (domain.Cart, error)
	Put(ctx context.Context, customerID string, cart domain.Cart) error
	Delete(ctx context.Context, customerID string) error
}
