// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest one it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UoW manages transactions that read customers and write orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customer, err := uow.CustomerRepository().Get(ctx, customerID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

type (
	// TrackingNumberIssuer hands out unique tracking numbers.
	TrackingNumberIssuer interface {
		NextTrackingNumber() string
	}

	// OrderRecorder observes committed order changes, typically for metrics.
	OrderRecorder interface {
		OrderCreated(discountRate decimal.Decimal)
		StatusChanged(to order.Status)
	}
)

type nopRecorder struct{}

func (nopRecorder) OrderCreated(decimal.Decimal) {}

func (nopRecorder) StatusChanged(order.Status) {}

func recorderOrNop(recorder OrderRecorder) OrderRecorder {
	if recorder == nil {
		return nopRecorder{}
	}
	return recorder
}

func clockOrNow(now services.Clock) services.Clock {
	if now == nil {
		return time.Now
	}
	return now
}
