package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
)

const tracerName = "github.com/padoca/ordering/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Checkout(ctx context.Context, input ports.CheckoutInput) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Checkout",
		trace.WithAttributes(
			attribute.String("order.customer_id", input.CustomerID),
			attribute.String("order.payment", string(input.Payment)),
		))
	defer span.End()

	order, err := s.inner.Checkout(ctx, input)
	if err != nil {
		s.metrics.recordCheckout(ctx, false)
		return nil, s.handleError(ctx, span, err, "checkout failed",
			slog.String("order.customer_id", input.CustomerID),
			slog.String("order.payment", string(input.Payment)))
	}
	span.SetAttributes(
		attribute.Int64("order.id", order.ID),
		attribute.String("order.number", order.Number),
	)
	s.metrics.recordCheckout(ctx, true)
	s.logInfo(ctx, "order placed",
		slog.Int64("order.id", order.ID),
		slog.String("order.number", order.Number),
		slog.String("order.customer_id", order.CustomerID),
		slog.Int64("order.total_cents", order.Total.Cents()))
	return order, nil
}

func (s *Service) AdvanceStatus(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.AdvanceStatus",
		trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := s.inner.AdvanceStatus(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to advance order status", slog.Int64("order.id", id))
	}
	span.SetAttributes(attribute.String("order.status", string(order.Status)))
	s.metrics.recordTransition(ctx, order.Status)
	s.logInfo(ctx, "order status advanced",
		slog.Int64("order.id", id), slog.String("order.status", string(order.Status)))
	return order, nil
}

func (s *Service) CancelOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CancelOrder",
		trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := s.inner.CancelOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to cancel order", slog.Int64("order.id", id))
	}
	s.metrics.recordTransition(ctx, order.Status)
	s.logInfo(ctx, "order cancelled", slog.Int64("order.id", id))
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder",
		trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get order", slog.Int64("order.id", id))
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	orders, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	checkouts   metric.Int64Counter
	transitions metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	checkouts, _ := m.Int64Counter("orders.service.checkouts", metric.WithDescription("Number of checkout attempts"))
	transitions, _ := m.Int64Counter("orders.service.status_transitions", metric.WithDescription("Number of order status transitions"))
	return serviceMetrics{checkouts: checkouts, transitions: transitions}
}

func (m serviceMetrics) recordCheckout(ctx context.Context, ok bool) {
	if m.checkouts != nil {
		m.checkouts.Add(ctx, 1, metric.WithAttributes(attribute.Bool("order.checkout.ok", ok)))
	}
}

func (m serviceMetrics) recordTransition(ctx context.Context, status domain.Status) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ ports.Service = (*Service)(nil)
