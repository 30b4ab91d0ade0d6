package application

import (
	"context"
	"log/slog"
	"time"

	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
	cartports "github.com/padoca/ordering/internal/domains/cart/ports"
	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
)

// DefaultLedgerKey is the namespaced key the snapshot store writes under,
// carried over from the original "@pedidos" storage entry.
const DefaultLedgerKey = "pedidos"

// Service owns the order lifecycle: checkout, status progression, and the
// write-through persistence of the ledger. The in-memory ledger is updated
// first; the durable snapshot write happens asynchronously and a failure is
// logged, never surfaced (availability over durability).
type Service struct {
	ledger    ports.Ledger
	snapshots ports.SnapshotStore
	carts     cartports.Service
	ids       *domain.IDSource
	logger    *slog.Logger
	key       string
	now       func() time.Time
	number    func() string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithLedgerKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// WithClock overrides the checkout timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithNumberSource overrides the order-number generator.
func WithNumberSource(number func() string) Option {
	return func(s *Service) { s.number = number }
}

func NewService(ledger ports.Ledger, snapshots ports.SnapshotStore, carts cartports.Service, opts ...Option) *Service {
	s := &Service{
		ledger:    ledger,
		snapshots: snapshots,
		carts:     carts,
		ids:       domain.NewIDSource(),
		logger:    slog.Default(),
		key:       DefaultLedgerKey,
		now:       time.Now,
		number:    domain.NewOrderNumber,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Checkout converts a customer's cart into an order. The reconciliation run
// here is the authoritative last-chance check: any shortfall aborts with a
// StockConflictError carrying the report, and nothing is appended.
func (s *Service) Checkout(ctx context.Context, input ports.CheckoutInput) (*domain.Order, error) {
	view, err := s.carts.Reconcile(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(view.Shortfalls) > 0 {
		return nil, &ports.StockConflictError{Report: cartdomain.Report{Lines: view.Lines, Shortfalls: view.Shortfalls}}
	}
	order, err := domain.NewOrder(s.ids.Next(), s.number(), input.CustomerID, s.now(), view.Lines, input.Payment)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.ledger.Append(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, input.CustomerID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear cart after checkout",
			slog.String("cart.customer_id", input.CustomerID), slog.String("error", err.Error()))
	}
	s.persistAsync(ctx)
	return order, nil
}

// AdvanceStatus moves an order one step forward in the fixed sequence.
func (s *Service) AdvanceStatus(ctx context.Context, id int64) (*domain.Order, error) {
	return s.transition(ctx, id, func(order *domain.Order) error {
		return order.Advance()
	})
}

// CancelOrder cancels an order still in received.
func (s *Service) CancelOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.transition(ctx, id, func(order *domain.Order) error {
		return order.Cancel()
	})
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.ledger.Get(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.ledger.List(ctx)
}

// Restore loads the persisted snapshot into the ledger. Called once at boot;
// an absent snapshot is a fresh start, not an error.
func (s *Service) Restore(ctx context.Context) error {
	orders, err := s.snapshots.Load(ctx, s.key)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}
	return s.ledger.ReplaceAll(ctx, orders)
}

func (s *Service) transition(ctx context.Context, id int64, apply func(*domain.Order) error) (*domain.Order, error) {
	order, err := s.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	if err := s.ledger.Update(ctx, order); err != nil {
		return nil, err
	}
	s.persistAsync(ctx)
	return order, nil
}

// persistAsync rewrites the full snapshot in the background. The caller's
// cancellation must not abort a write that is already owed to the store.
func (s *Service) persistAsync(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		orders, err := s.ledger.List(writeCtx)
		if err != nil {
			s.logger.ErrorContext(writeCtx, "failed to read ledger for snapshot", slog.String("error", err.Error()))
			return
		}
		if err := s.snapshots.Save(writeCtx, s.key, orders); err != nil {
			s.logger.ErrorContext(writeCtx, "failed to persist ledger snapshot",
				slog.String("ledger.key", s.key), slog.Int("ledger.orders", len(orders)), slog.String("error", err.Error()))
		}
	}()
}

var _ ports.Service = (*Service)(nil)
