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

	cartports "github.com/padoca/ordering/internal/domains/cart/ports"
)

const tracerName = "github.com/padoca/ordering/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
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

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
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

func (s *Service) AddLine(ctx context.Context, customerID string, productID int64) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddLine",
		trace.WithAttributes(attribute.String("cart.customer_id", customerID), attribute.Int64("cart.product_id", productID)))
	defer span.End()

	view, err := s.inner.AddLine(ctx, customerID, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add cart line",
			slog.String("cart.customer_id", customerID), slog.Int64("cart.product_id", productID))
	}
	s.metrics.recordLineAdded(ctx)
	s.logInfo(ctx, "cart line added",
		slog.String("cart.customer_id", customerID),
		slog.Int64("cart.product_id", productID),
		slog.Int64("cart.items", view.Totals.Items))
	return view, nil
}

func (s *Service) RemoveLine(ctx context.Context, customerID string, productID int64) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveLine",
		trace.WithAttributes(attribute.String("cart.customer_id", customerID), attribute.Int64("cart.product_id", productID)))
	defer span.End()

	view, err := s.inner.RemoveLine(ctx, customerID, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to remove cart line",
			slog.String("cart.customer_id", customerID), slog.Int64("cart.product_id", productID))
	}
	return view, nil
}

func (s *Service) DeleteLine(ctx context.Context, customerID string, productID int64) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.DeleteLine",
		trace.WithAttributes(attribute.String("cart.customer_id", customerID), attribute.Int64("cart.product_id", productID)))
	defer span.End()

	view, err := s.inner.DeleteLine(ctx, customerID, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to delete cart line",
			slog.String("cart.customer_id", customerID), slog.Int64("cart.product_id", productID))
	}
	return view, nil
}

func (s *Service) Reconcile(ctx context.Context, customerID string) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Reconcile",
		trace.WithAttributes(attribute.String("cart.customer_id", customerID)))
	defer span.End()

	view, err := s.inner.Reconcile(ctx, customerID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to reconcile cart", slog.String("cart.customer_id", customerID))
	}
	span.SetAttributes(attribute.Int("cart.shortfalls", len(view.Shortfalls)))
	s.metrics.recordReconciliation(ctx, len(view.Shortfalls))
	if len(view.Shortfalls) > 0 {
		s.logInfo(ctx, "cart reconciled with shortfalls",
			slog.String("cart.customer_id", customerID),
			slog.Int("cart.shortfalls", len(view.Shortfalls)))
	}
	return view, nil
}

func (s *Service) Clear(ctx context.Context, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "CartService.Clear",
		trace.WithAttributes(attribute.String("cart.customer_id", customerID)))
	defer span.End()

	if err := s.inner.Clear(ctx, customerID); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart", slog.String("cart.customer_id", customerID))
	}
	return nil
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
	linesAdded      metric.Int64Counter
	reconciliations metric.Int64Counter
	shortfalls      metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	linesAdded, _ := m.Int64Counter("cart.service.lines_added", metric.WithDescription("Number of cart line additions"))
	reconciliations, _ := m.Int64Counter("cart.service.reconciliations", metric.WithDescription("Number of reconciliation passes"))
	shortfalls, _ := m.Int64Counter("cart.service.shortfalls", metric.WithDescription("Number of shortfalls found during reconciliation"))
	return serviceMetrics{linesAdded: linesAdded, reconciliations: reconciliations, shortfalls: shortfalls}
}

func (m serviceMetrics) recordLineAdded(ctx context.Context) {
	if m.linesAdded != nil {
		m.linesAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordReconciliation(ctx context.Context, shortfalls int) {
	if m.reconciliations != nil {
		m.reconciliations.Add(ctx, 1)
	}
	if m.shortfalls != nil && shortfalls > 0 {
		m.shortfalls.Add(ctx, int64(shortfalls))
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ cartports.Service = (*Service)(nil)
