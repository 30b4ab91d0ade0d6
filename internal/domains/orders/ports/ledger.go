package ports

import (
	"context"
	"errors"

	"github.com/padoca/ordering/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Ledger is the authoritative newest-first collection of orders. Ordering is
// by insertion, not by timestamp, so appends stay deterministic.
type Ledger interface {
	Append(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]*domain.Order, error)
	ReplaceAll(ctx context.Context, orders []*domain.Order) error
}

// SnapshotStore persists the whole ledger under a single namespaced key.
// Every write is a full rewrite; there are no partial updates.
type SnapshotStore interface {
	Save(ctx context.Context, key string, orders []*domain.Order) error
	Load(ctx context.Context, key string) ([]*domain.Order, error)
}
