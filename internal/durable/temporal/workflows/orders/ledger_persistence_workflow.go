package orders

import (
	"go.temporal.io/sdk/workflow"

	orderactivities "github.com/padoca/ordering/internal/durable/temporal/activities/orders"
	"github.com/padoca/ordering/internal/durable/temporal/sequences"
)

const (
	// LedgerPersistenceWorkflowName is the public identifier for registering the workflow.
	LedgerPersistenceWorkflowName = "orders.workflows.LedgerPersistence"
	// LedgerPersistenceTaskQueue is the queue consumed by the worker processing ledger workflows.
	LedgerPersistenceTaskQueue = "LEDGER_PERSISTENCE"
)

// LedgerPersistenceWorkflowInput carries the snapshot to persist plus the
// originating trace for log correlation.
type LedgerPersistenceWorkflowInput struct {
	Snapshot orderactivities.LedgerSnapshot
	TraceID  string
}

// LedgerPersistenceWorkflow durably writes one full ledger snapshot.
func LedgerPersistenceWorkflow(ctx workflow.Context, input LedgerPersistenceWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("LedgerPersistenceWorkflow started",
		withTraceID(input.TraceID, "ledgerKey", input.Snapshot.Key, "orders", len(input.Snapshot.Orders))...)
	if err := sequences.RunLedgerPersistenceSequence(ctx, input.Snapshot); err != nil {
		logger.Error("LedgerPersistenceWorkflow failed",
			withTraceID(input.TraceID, "ledgerKey", input.Snapshot.Key, "error", err)...)
		return err
	}
	logger.Info("LedgerPersistenceWorkflow completed", withTraceID(input.TraceID, "ledgerKey", input.Snapshot.Key)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
