package commands

import (
	"context"
	"fmt"

	"oms/internal/pkg/errs"
)

// DeleteCustomerCommandHandler refuses to orphan orders: a customer is removed only
// once every order referencing it is gone.
type DeleteCustomerCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory UoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns *errs.ObjectNotFoundError for an unknown customer and
// *errs.ObjectConflictError while the customer still has orders.
func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return errs.NewObjectConflictError("customer",
			fmt.Errorf("customer %s still has %d orders", cmd.CustomerID(), len(orders)))
	}

	if err = uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
