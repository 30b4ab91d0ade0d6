package memory

import (
	"context"
	"sync"

	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore keeps full ledger snapshots in memory, one per key.
type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string][]*domain.Order
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snapshots: map[string][]*domain.Order{}}
}

func (s *SnapshotStore) Save(_ context.Context, key string, orders []*domain.Order) error {
	clone := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		clone = append(clone, order.Clone())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key] = clone
	return nil
}

func (s *SnapshotStore) Load(_ context.Context, key string) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.snapshots[key]
	if !ok {
		return nil, nil
	}
	clone := make([]*domain.Order, 0, len(stored))
	for _, order := range stored {
		clone = append(clone, order.Clone())
	}
	return clone, nil
}
