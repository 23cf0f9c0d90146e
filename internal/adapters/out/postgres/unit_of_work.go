// Package postgres provides the GORM-based Unit of Work that binds the order and
// customer repositories to one database transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	buyer, err := uow.CustomerRepository().Get(ctx, customerID)
//	if err != nil {
//	    return err
//	}
//	// ... build the order from buyer
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// A unit of work instance holds transaction state and must not be shared between
// goroutines. Create one per command.
package postgres

import (
	"context"

	"oms/internal/adapters/out/postgres/customerrepo"
	"oms/internal/adapters/out/postgres/orderrepo"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// CommitObserver is told which aggregates a successful commit made permanent.
type CommitObserver interface {
	AggregatesCommitted(aggregates []any)
}

type nopCommitObserver struct{}

func (nopCommitObserver) AggregatesCommitted([]any) {}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer CommitObserver
}

// Option configures a GormUnitOfWorkFactory.
type Option func(*GormUnitOfWorkFactory)

// WithCommitObserver reports the aggregates of every successful commit to observer.
func WithCommitObserver(observer CommitObserver) Option {
	return func(f *GormUnitOfWorkFactory) {
		if observer != nil {
			f.observer = observer
		}
	}
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// Open db with gorm.Config{TranslateError: true} so unique violations surface as conflicts.
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...Option) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:       db,
		observer: nopCommitObserver{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a fresh UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observer:          f.observer,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and records the aggregates
// written through its repositories. The record is handed to the commit observer
// and cleared when the transaction ends.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observer          CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit makes the changes permanent and closes the transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	if len(uow.trackedAggregates) > 0 {
		uow.observer.AggregatesCommitted(uow.TrackedAggregates())
		uow.trackedAggregates = uow.trackedAggregates[:0]
	}
	return nil
}

// Rollback discards the changes and closes the transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// CustomerRepository returns a customer repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after each successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written in the open transaction, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	aggregates := make([]any, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		aggregates = append(aggregates, tracked.Aggregate)
	}
	return aggregates
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
