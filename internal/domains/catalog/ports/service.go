package ports

import (
	"context"

	"github.com/padoca/ordering/internal/domains/catalog/domain"
)

// Service exposes the catalog to the rest of the system. The ordering core
// only calls the read side; the mutation entry points belong to the seller
// collaborator.
type Service interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	// Stock returns the available quantity for a product, zero when the
	// product is unknown. It never reports a negative value.
	Stock(ctx context.Context, id int64) (int64, error)

	SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int64) (*domain.Product, error)
}
