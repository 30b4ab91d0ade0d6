package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
	orderactivities "github.com/padoca/ordering/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/padoca/ordering/internal/durable/temporal/workflows/orders"
)

var _ ports.SnapshotStore = (*TemporalSnapshotStore)(nil)

// TemporalSnapshotStore hands snapshot writes to a Temporal workflow so the
// write survives API restarts and is retried by the worker. Saves are
// fire-and-forget: the workflow is started but not awaited. Loads go straight
// to the underlying store, which also serves as the write fallback when the
// cluster is unreachable.
type TemporalSnapshotStore struct {
	client    client.Client
	taskQueue string
	fallback  ports.SnapshotStore
}

// NewTemporalSnapshotStore wires a Temporal client over the durable store.
func NewTemporalSnapshotStore(c client.Client, fallback ports.SnapshotStore) *TemporalSnapshotStore {
	return &TemporalSnapshotStore{
		client:    c,
		taskQueue: orderworkflows.LedgerPersistenceTaskQueue,
		fallback:  fallback,
	}
}

// Save starts the persistence workflow with the full snapshot as payload.
func (s *TemporalSnapshotStore) Save(ctx context.Context, key string, orders []*domain.Order) error {
	if s == nil || s.client == nil {
		return errors.New("temporal snapshot store not configured")
	}
	options := client.StartWorkflowOptions{
		ID:        buildLedgerPersistenceWorkflowID(key),
		TaskQueue: s.taskQueue,
	}
	input := orderworkflows.LedgerPersistenceWorkflowInput{
		Snapshot: orderactivities.LedgerSnapshot{Key: key, Orders: orders},
		TraceID:  workflowTraceID(ctx),
	}
	_, err := s.client.ExecuteWorkflow(ctx, options, orderworkflows.LedgerPersistenceWorkflow, input)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		if s.fallback != nil {
			return s.fallback.Save(ctx, key, orders)
		}
		return err
	}
	return nil
}

// Load reads directly from the underlying store. Workflow writes land there,
// so a direct read always sees the latest completed snapshot.
func (s *TemporalSnapshotStore) Load(ctx context.Context, key string) ([]*domain.Order, error) {
	if s == nil || s.fallback == nil {
		return nil, errors.New("temporal snapshot store not configured")
	}
	return s.fallback.Load(ctx, key)
}

// buildLedgerPersistenceWorkflowID keeps IDs unique per write so a newer
// snapshot is never rejected as a duplicate of a still-running one.
func buildLedgerPersistenceWorkflowID(key string) string {
	return fmt.Sprintf("ledger-persist-%s-%d", key, time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() || !spanCtx.TraceID().IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
