package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger is the in-memory newest-first order collection.
type Ledger struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append inserts at the head so the most recent order lists first.
func (l *Ledger) Append(_ context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]*domain.Order{order.Clone()}, l.orders...)
	return nil
}

func (l *Ledger) Get(_ context.Context, id int64) (*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, order := range l.orders {
		if order.ID == id {
			return order.Clone(), nil
		}
	}
	return nil, ports.ErrNotFound
}

// Update replaces the stored order in place, keeping its position.
func (l *Ledger) Update(_ context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, existing := range l.orders {
		if existing.ID == order.ID {
			l.orders[i] = order.Clone()
			return nil
		}
	}
	return ports.ErrNotFound
}

func (l *Ledger) List(_ context.Context) ([]*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	list := make([]*domain.Order, 0, len(l.orders))
	for _, order := range l.orders {
		list = append(list, order.Clone())
	}
	return list, nil
}

// ReplaceAll swaps the whole collection, preserving the given order.
func (l *Ledger) ReplaceAll(_ context.Context, orders []*domain.Order) error {
	replacement := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			continue
		}
		replacement = append(replacement, order.Clone())
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = replacement
	return nil
}
