package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderactivities "github.com/padoca/ordering/internal/durable/temporal/activities/orders"
)

// RunLedgerPersistenceSequence executes the activities needed to durably store
// a ledger snapshot. Later snapshots supersede earlier ones, so retries of a
// stale sequence are harmless.
func RunLedgerPersistenceSequence(ctx workflow.Context, snapshot orderactivities.LedgerSnapshot) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("ledger persistence sequence started", "ledgerKey", snapshot.Key, "orders", len(snapshot.Orders))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	if err := workflow.ExecuteActivity(ctx, orderactivities.PersistLedgerActivityName, snapshot).Get(ctx, nil); err != nil {
		logger.Error("ledger persistence sequence failed", "ledgerKey", snapshot.Key, "error", err)
		return err
	}
	logger.Info("ledger persistence sequence completed", "ledgerKey", snapshot.Key)
	return nil
}
