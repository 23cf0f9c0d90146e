package commands

import (
	"context"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. It loads the customer, prices the order
// with the discount engine, assigns a tracking number and persists the result in
// one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewDiscountEngine(time.Now), allocator, time.Now, metrics)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown customer
//	}
type CreateOrderCommandHandler struct {
	uowFactory      UoWFactory
	discounts       services.DiscountEngine
	trackingNumbers TrackingNumberIssuer
	now             services.Clock
	recorder        OrderRecorder
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// A nil clock uses time.Now and a nil recorder records nothing.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	discounts services.DiscountEngine,
	trackingNumbers TrackingNumberIssuer,
	now services.Clock,
	recorder OrderRecorder,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		discounts:       discounts,
		trackingNumbers: trackingNumbers,
		now:             clockOrNow(now),
		recorder:        recorderOrNop(recorder),
	}
}

// Handle creates the order in Created status dated now.
// Returns *errs.ObjectNotFoundError when the customer does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Items(), h.now())
	if err != nil {
		return nil, err
	}

	rate := h.discounts.ComputeDiscount(created, buyer)
	if err = created.ApplyDiscount(rate); err != nil {
		return nil, err
	}

	if err = created.AssignTrackingNumber(h.trackingNumbers.NextTrackingNumber()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderCreated(rate)
	return created, nil
}
