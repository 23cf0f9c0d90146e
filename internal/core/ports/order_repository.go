package ports

import (
	"context"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Line items are stored and loaded together with their order.
type OrderRepository interface {
	// Add persists a new order with its line items.
	// Fails when the tracking number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns *errs.ObjectNotFoundError when no order has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its line items.
	// Returns *errs.ObjectNotFoundError when no order has the identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByDateRange returns the orders placed within [from, to]. A nil bound is open.
	GetByDateRange(ctx context.Context, from, to *time.Time) ([]*order.Order, error)

	// GetByCustomer returns the orders of a customer, newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// MaxTrackingSequence returns the highest sequence suffix over every stored
	// tracking number, or zero when there are none. It seeds the tracking number
	// allocator at startup.
	MaxTrackingSequence(ctx context.Context) (int64, error)
}
