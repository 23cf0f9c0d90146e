package commands

import (
	"context"

	"oms/internal/core/domain/model/customer"
)

type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns *errs.ObjectNotFoundError for an unknown customer and
// *errs.ObjectConflictError when the new email belongs to someone else.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
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

	profile := cmd.Profile()
	if err = existing.UpdateProfile(
		profile.FirstName,
		profile.LastName,
		profile.Email,
		profile.Phone,
		profile.Segment,
	); err != nil {
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
