package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand overwrites the profile of an existing customer.
// Purchase history is not part of the profile and stays untouched.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	profile    CustomerProfile

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID kernel.UUID, profile CustomerProfile) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		profile:    profile,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateCustomerCommand) Profile() CustomerProfile {
	return c.profile
}
