package checkout

import "context"

// IDSource issues the next durable order ID. Implementations must keep IDs
// unique and monotonic across restarts.
type IDSource interface {
	Next(ctx context.Context) (int64, error)
}

// AuditLog records one line per placed order. Append failures are reported to
// the operational log but never fail a checkout.
type AuditLog interface {
	Append(ctx context.Context, orderID int64, paymentMethod string) error
}
