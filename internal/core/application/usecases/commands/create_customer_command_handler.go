package commands

import (
	"context"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/services"
)

type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	now        services.Clock
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, now services.Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		now:        clockOrNow(now),
	}
}

// Handle validates the profile, imports the history when given and stores the customer.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	profile := cmd.Profile()
	created, err := customer.NewCustomer(
		cmd.CustomerID(),
		profile.FirstName,
		profile.LastName,
		profile.Email,
		profile.Phone,
		profile.Segment,
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if history := cmd.History(); history != nil {
		if err = created.ImportHistory(history.TotalSpent, history.OrderCount, history.LastOrderDate); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
