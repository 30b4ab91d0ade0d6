package application

import (
	"context"
	"errors"

	"github.com/padoca/ordering/internal/domains/catalog/domain"
	"github.com/padoca/ordering/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Stock reports the available quantity for a product. Unknown products count
// as sold out rather than an error so the reconciler can treat both the same
// way.
func (s *Service) Stock(ctx context.Context, id int64) (int64, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return product.Stock, nil
}

func (s *Service) SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) AdjustStock(ctx context.Context, id int64, delta int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.AdjustStock(delta); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

var _ ports.Service = (*Service)(nil)
