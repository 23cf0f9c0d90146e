// Package ports defines the persistence contracts of the ordering domain.
// Use cases depend on these interfaces; adapters in internal/adapters/out implement them.
package ports

import (
	"context"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by identifier.
	// Returns *errs.ObjectNotFoundError when no customer has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer.
	// Returns *errs.ObjectNotFoundError when no customer has the identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetBySegment lists the customers of a tier ordered by last name.
	GetBySegment(ctx context.Context, segment customer.Segment) ([]*customer.Customer, error)
}
