package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/padoca/ordering/internal/domains/catalog/domain"
	"github.com/padoca/ordering/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{products: map[int64]*domain.Product{}}
}

// NewSeededRepository returns a repository preloaded with the bakery menu
// used when no durable catalog source is configured.
func NewSeededRepository() *Repository {
	repo := NewRepository()
	for _, p := range SeedProducts() {
		clone := p
		repo.products[clone.ID] = &clone
		if clone.ID > repo.nextID {
			repo.nextID = clone.ID
		}
	}
	return repo
}

// SeedProducts lists the default menu with prices in centavos.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Pão Francês", UnitPrice: 50, Category: domain.CategorySalgados, Stock: 30},
		{ID: 2, Name: "Bolo de Chocolate", UnitPrice: 1500, Category: domain.CategoryDoces, Stock: 7},
		{ID: 3, Name: "Croissant", UnitPrice: 450, Category: domain.CategorySalgados, Stock: 18},
		{ID: 4, Name: "Torta de Frango", UnitPrice: 800, Category: domain.CategorySalgados, Stock: 13},
		{ID: 5, Name: "Café Especial", UnitPrice: 500, Category: domain.CategoryBebidas, Stock: 30},
		{ID: 6, Name: "Sonho", UnitPrice: 350, Category: domain.CategoryDoces, Stock: 6},
		{ID: 7, Name: "Pão de Queijo", UnitPrice: 100, Category: domain.CategorySalgados, Stock: 20},
		{ID: 8, Name: "Biscoito Caseiro", UnitPrice: 250, Category: domain.CategoryDoces, Stock: 16},
		{ID: 9, Name: "Suco Natural", UnitPrice: 600, Category: domain.CategoryBebidas, Stock: 8},
		{ID: 10, Name: "Empada", UnitPrice: 300, Category: domain.CategorySalgados, Stock: 12},
	}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.products[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
