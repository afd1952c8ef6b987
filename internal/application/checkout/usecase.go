package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/minimart/pos-simulator/internal/domain/cart"
	"github.com/minimart/pos-simulator/internal/domain/order"
	"github.com/minimart/pos-simulator/internal/domain/payment"
	"github.com/minimart/pos-simulator/internal/pkg/metrics"
)

const tracerName = "checkout"

var (
	// ErrEmptyCart rejects a checkout before any side effect happens.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrInvalidPaymentMethod rejects a method outside the closed set,
	// again before any side effect.
	ErrInvalidPaymentMethod = payment.ErrUnknownMethod
	// ErrIDUnavailable wraps a counter store failure. This one is fatal:
	// fabricating an order ID would break uniqueness.
	ErrIDUnavailable = errors.New("checkout: order id store unavailable")
)

// UseCase converts the session cart into an immutable order exactly once per
// successful payment. It is the only component that touches the ID source and
// the audit log, and it does so within one Execute call.
type UseCase struct {
	cart    *cart.Cart
	ids     IDSource
	audit   AuditLog
	archive order.Repository

	log *zap.Logger
	met *metrics.CheckoutMetrics
}

func NewUseCase(c *cart.Cart, ids IDSource, audit AuditLog, archive order.Repository, log *zap.Logger, met *metrics.CheckoutMetrics) *UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &UseCase{
		cart:    c,
		ids:     ids,
		audit:   audit,
		archive: archive,
		log:     log,
		met:     met,
	}
}

// Execute runs the checkout workflow:
//
//	reject empty cart -> validate method -> pay -> issue ID -> build order
//	-> archive (best-effort) -> audit (best-effort) -> clear cart
//
// An order ID is consumed if and only if a payment label was produced, and
// the cart is cleared if and only if the order was fully constructed.
func (uc *UseCase) Execute(ctx context.Context, method payment.Method) (_ *order.Order, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Checkout.Execute")
	start := time.Now()
	outcome := "success"
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
		if uc.met != nil {
			uc.met.Checkouts.WithLabelValues(outcome).Inc()
			uc.met.Duration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		}
	}()

	if uc.cart.IsEmpty() {
		outcome = "empty_cart"
		return nil, ErrEmptyCart
	}
	if !method.Valid() {
		outcome = "invalid_method"
		return nil, ErrInvalidPaymentMethod
	}

	total := uc.cart.Total()
	span.SetAttributes(
		attribute.String("checkout.total", total.String()),
		attribute.String("checkout.method", method.String()),
	)

	label, err := payment.Pay(method, total)
	if err != nil {
		outcome = "invalid_method"
		return nil, err
	}

	id, err := uc.ids.Next(ctx)
	if err != nil {
		outcome = "id_unavailable"
		uc.log.Error("order_id_issue_failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrIDUnavailable, err)
	}
	span.SetAttributes(attribute.Int64("order.id", id))

	lines := snapshotLines(uc.cart.Lines())
	ord, err := order.New(id, lines, label, total)
	if err != nil {
		// ID was already consumed; surface the construction failure.
		outcome = "construct_failed"
		return nil, fmt.Errorf("checkout: construct order %d: %w", id, err)
	}

	if uc.archive != nil {
		if aerr := uc.archive.Save(ctx, ord); aerr != nil {
			uc.log.Warn("order_archive_failed",
				zap.Int64("order_id", ord.ID),
				zap.Error(aerr),
			)
			if uc.met != nil {
				uc.met.ArchiveFailures.Inc()
			}
		}
	}

	if uc.audit != nil {
		if aerr := uc.audit.Append(ctx, ord.ID, ord.PaymentMethod); aerr != nil {
			uc.log.Warn("audit_append_failed",
				zap.Int64("order_id", ord.ID),
				zap.Error(aerr),
			)
			if uc.met != nil {
				uc.met.AuditFailures.Inc()
			}
		}
	}

	uc.cart.Clear()

	uc.log.Info("order_placed",
		zap.Int64("order_id", ord.ID),
		zap.String("reference", ord.Reference),
		zap.String("payment_method", ord.PaymentMethod),
		zap.String("total", ord.Total.String()),
	)
	return ord, nil
}

// ListOrders returns all archived orders for display.
func (uc *UseCase) ListOrders(ctx context.Context) ([]*order.Order, error) {
	if uc.archive == nil {
		return nil, nil
	}
	return uc.archive.List(ctx)
}

func snapshotLines(lines []cart.Line) []order.Line {
	out := make([]order.Line, len(lines))
	for i, l := range lines {
		out[i] = order.Line{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
		}
	}
	return out
}
