package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/minimart/pos-simulator/internal/domain/order"
)

// OrderRepository keeps placed orders in memory, in placement order. It backs
// tests and runs with persistence disabled; orders are lost on exit.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	byID   map[int64]*domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[int64]*domain.Order)}
}

func (r *OrderRepository) Save(ctx context.Context, o *domain.Order) error {
	_ = ctx
	if o == nil || o.ID <= 0 {
		return fmt.Errorf("order repository: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; exists {
		return fmt.Errorf("order repository: order %d already archived", o.ID)
	}

	clone := o.Clone()
	r.orders = append(r.orders, clone)
	r.byID[clone.ID] = clone
	return nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out, nil
}
