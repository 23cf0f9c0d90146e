package commands

import (
	"context"
	"errors"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies full-record updates. Totals and the discount
// are recomputed exactly as at creation; identity, order date and tracking number
// are preserved.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	discounts  services.DiscountEngine
	now        services.Clock
}

func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	discounts services.DiscountEngine,
	now services.Clock,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		discounts:  discounts,
		now:        clockOrNow(now),
	}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
// An unknown customer is accepted and simply earns no discount.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	var buyer *customer.Customer
	buyer, err = uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		buyer = nil
	case err != nil:
		return nil, err
	}

	if err = existing.Replace(cmd.CustomerID(), cmd.Items(), cmd.Status(), h.now()); err != nil {
		return nil, err
	}

	if err = existing.ApplyDiscount(h.discounts.ComputeDiscount(existing, buyer)); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
