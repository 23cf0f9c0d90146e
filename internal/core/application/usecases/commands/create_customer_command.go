package commands

import (
	"errors"
	"strings"
	"time"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CustomerProfile carries the personal data of a new customer.
type CustomerProfile struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Segment   customer.Segment
}

// PurchaseHistory is the optional history of a customer migrated from elsewhere.
type PurchaseHistory struct {
	TotalSpent    decimal.Decimal
	OrderCount    int
	LastOrderDate *time.Time
}

// CreateCustomerCommand registers a customer, optionally with imported purchase history.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	profile    CustomerProfile
	history    *PurchaseHistory

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand checks the fields the handler cannot recover from.
// Full profile validation happens in the customer aggregate.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	profile CustomerProfile,
	history *PurchaseHistory,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setEmail(profile.Email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	if history != nil {
		h := *history
		cmd.history = &h
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Profile() CustomerProfile {
	return c.profile
}

// History returns nil when the customer starts without purchases.
func (c CreateCustomerCommand) History() *PurchaseHistory {
	return c.history
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}
