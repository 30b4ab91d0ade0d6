package application

import (
	"context"
	"errors"
	"fmt"

	catalogports "github.com/padoca/ordering/internal/domains/catalog/ports"
	"github.com/padoca/ordering/internal/domains/cart/domain"
	"github.com/padoca/ordering/internal/domains/cart/ports"
)

// Service is the cart reconciliation engine: it applies user line mutations
// and keeps every cart consistent with the locally visible catalog stock.
type Service struct {
	carts   ports.Store
	catalog catalogports.Service
}

func NewService(carts ports.Store, catalog catalogports.Service) *Service {
	return &Service{carts: carts, catalog: catalog}
}

func (s *Service) AddLine(ctx context.Context, customerID string, productID int64) (*ports.View, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			// An unknown product and a sold-out one look the same to the cart.
			return nil, domain.ErrOutOfStock
		}
		return nil, err
	}
	if err := cart.Add(product.ID, product.Name, product.UnitPrice, product.Stock); err != nil {
		return nil, err
	}
	if err := s.carts.Put(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return viewOf(cart, nil), nil
}

func (s *Service) RemoveLine(ctx context.Context, customerID string, productID int64) (*ports.View, error) {
	return s.mutate(ctx, customerID, func(cart *domain.Cart) {
		cart.Remove(productID)
	})
}

func (s *Service) DeleteLine(ctx context.Context, customerID string, productID int64) (*ports.View, error) {
	return s.mutate(ctx, customerID, func(cart *domain.Cart) {
		cart.Delete(productID)
	})
}

// Reconcile clamps every line to the available stock and reports shortfalls.
// The pass is idempotent: repeating it against an unchanged catalog yields a
// clean report.
func (s *Service) Reconcile(ctx context.Context, customerID string) (*ports.View, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	available, err := s.stockFor(ctx, cart.Lines)
	if err != nil {
		return nil, err
	}
	report := cart.Reconcile(func(productID int64) int64 { return available[productID] })
	if err := s.carts.Put(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return viewOf(cart, report.Shortfalls), nil
}

func (s *Service) Clear(ctx context.Context, customerID string) error {
	return s.carts.Delete(ctx, customerID)
}

func (s *Service) mutate(ctx context.Context, customerID string, apply func(*domain.Cart)) (*ports.View, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	apply(&cart)
	if err := s.carts.Put(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return viewOf(cart, nil), nil
}

func (s *Service) stockFor(ctx context.Context, lines []domain.Line) (map[int64]int64, error) {
	available := make(map[int64]int64, len(lines))
	for _, line := range lines {
		stock, err := s.catalog.Stock(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("stock lookup for product %d: %w", line.ProductID, err)
		}
		available[line.ProductID] = stock
	}
	return available, nil
}

func viewOf(cart domain.Cart, shortfalls []domain.Shortfall) *ports.View {
	return &ports.View{
		Lines:      cart.CloneLines(),
		Shortfalls: shortfalls,
		Totals:     cart.Totals(),
	}
}

var _ ports.Service = (*Service)(nil)
