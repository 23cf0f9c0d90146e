package commands

import (
	"errors"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"
)

var ErrChangeCustomerSegmentCommandIsNotConstructed = errors.New(
	"ChangeCustomerSegmentCommand must be created via NewChangeCustomerSegmentCommand constructor",
)

// ChangeCustomerSegmentCommand moves a customer to another tier.
type ChangeCustomerSegmentCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	segment    customer.Segment

	guard guard.ConstructorGuard
}

func NewChangeCustomerSegmentCommand(
	customerID kernel.UUID,
	segment customer.Segment,
) (ChangeCustomerSegmentCommand, error) {
	if err := errors.Join(customerID.Validate(), segment.Validate()); err != nil {
		return ChangeCustomerSegmentCommand{}, err
	}

	return ChangeCustomerSegmentCommand{
		customerID: customerID,
		segment:    segment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCustomerSegmentCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomerSegmentCommandIsNotConstructed)
}

func (c ChangeCustomerSegmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c ChangeCustomerSegmentCommand) Segment() customer.Segment {
	return c.segment
}
