package memory

import (
	"context"
	"sync"

	"github.com/padoca/ordering/internal/domains/cart/domain"
	"github.com/padoca/ordering/internal/domains/cart/ports"
)

var _ ports.Store = (*Store)(nil)

// Store is an in-memory cart-per-customer adapter.
type Store struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewStore() *Store {
	return &Store{carts: map[string]domain.Cart{}}
}

func (s *Store) Get(_ context.Context, customerID string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[customerID]
	if !ok {
		return domain.Cart{}, nil
	}
	return cart.Clone(), nil
}

func (s *Store) Put(_ context.Context, customerID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[customerID] = cart.Clone()
	return nil
}

func (s *Store) Delete(_ context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerID)
	return nil
}
