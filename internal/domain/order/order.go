package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("order: not found")
	ErrInvalidID     = errors.New("order: id must be greater than zero")
	ErrNoLines       = errors.New("order: at least one line is required")
	ErrMissingMethod = errors.New("order: payment method label is required")
)

// Line is an immutable snapshot of a cart line taken at checkout time. It
// copies the product fields so later cart or catalog changes cannot reach a
// placed order.
type Line struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Order is the immutable record of a completed purchase. It is constructed
// exactly once per successful checkout and never mutated afterwards.
type Order struct {
	ID            int64
	Reference     string
	Lines         []Line
	PaymentMethod string
	Total         decimal.Decimal
	PlacedAt      time.Time
}

func New(id int64, lines []Line, paymentMethod string, total decimal.Decimal) (*Order, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if paymentMethod == "" {
		return nil, ErrMissingMethod
	}

	snapshot := make([]Line, len(lines))
	copy(snapshot, lines)

	return &Order{
		ID:            id,
		Reference:     uuid.NewString(),
		Lines:         snapshot,
		PaymentMethod: paymentMethod,
		Total:         total,
		PlacedAt:      time.Now().UTC(),
	}, nil
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Lines = make([]Line, len(o.Lines))
	copy(clone.Lines, o.Lines)
	return &clone
}

// Repository archives placed orders so they can be listed later. Archiving is
// best-effort auditing; the order exists once checkout constructed it.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]*Order, error)
}
