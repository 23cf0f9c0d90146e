package commands

import (
	"context"

	"oms/internal/core/domain/model/customer"
)

type ChangeCustomerSegmentCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewChangeCustomerSegmentCommandHandler(uowFactory CustomerUoWFactory) ChangeCustomerSegmentCommandHandler {
	return ChangeCustomerSegmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns *errs.ObjectNotFoundError when the customer does not exist.
func (h ChangeCustomerSegmentCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCustomerSegmentCommand,
) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	existing, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeSegment(cmd.Segment()); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
