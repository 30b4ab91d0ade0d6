package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
)

// PersistLedgerActivityName writes a full ledger snapshot to durable storage.
const PersistLedgerActivityName = "orders.activities.PersistLedger"

// LedgerSnapshot is the self-contained activity payload: the storage key and
// the complete order list, newest first. Carrying the whole snapshot keeps the
// worker stateless.
type LedgerSnapshot struct {
	Key    string
	Orders []*domain.Order
}

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	store ports.SnapshotStore
}

// NewActivities wires the snapshot store into the Temporal activities bundle.
func NewActivities(store ports.SnapshotStore) *Activities {
	return &Activities{store: store}
}

// PersistLedger overwrites the stored snapshot with the one in the payload.
func (a *Activities) PersistLedger(ctx context.Context, snapshot LedgerSnapshot) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.store == nil {
		logger.Error("ledger persist activity not initialized", "ledgerKey", snapshot.Key)
		return errors.New("ledger persist activity not initialized")
	}
	logger.Info("PersistLedger activity started", "ledgerKey", snapshot.Key, "orders", len(snapshot.Orders))
	if err := a.store.Save(ctx, snapshot.Key, snapshot.Orders); err != nil {
		logger.Error("PersistLedger activity failed", "ledgerKey", snapshot.Key, "error", err)
		return err
	}
	logger.Info("PersistLedger activity completed", "ledgerKey", snapshot.Key, "orders", len(snapshot.Orders))
	return nil
}
