package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the buyer aggregate. The discount engine reads its segment,
// cumulative spend and last order date; it never holds references to orders.
type Customer struct {
	id            kernel.UUID
	firstName     string
	lastName      string
	email         string
	phone         string
	segment       Segment
	totalSpent    decimal.Decimal
	orderCount    int
	lastOrderDate *time.Time
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewCustomer registers a customer with no purchase history.
func NewCustomer(
	id kernel.UUID,
	firstName, lastName, email, phone string,
	segment Segment,
	now time.Time,
) (*Customer, error) {
	c := &Customer{
		totalSpent: decimal.Zero,
		createdAt:  now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
		c.setEmail(email),
		c.setSegment(segment),
	); err != nil {
		return nil, err
	}
	c.phone = strings.TrimSpace(phone)

	return c, nil
}

// RestoreCustomer rebuilds a customer from persisted state.
func RestoreCustomer(
	id kernel.UUID,
	firstName, lastName, email, phone string,
	segment Segment,
	totalSpent decimal.Decimal,
	orderCount int,
	lastOrderDate *time.Time,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{
		phone:     phone,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
		c.setEmail(email),
		c.setSegment(segment),
		c.setHistory(totalSpent, orderCount, lastOrderDate),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) FirstName() string {
	return c.firstName
}

func (c *Customer) LastName() string {
	return c.lastName
}

func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Segment() Segment {
	return c.segment
}

func (c *Customer) TotalSpent() decimal.Decimal {
	return c.totalSpent
}

func (c *Customer) OrderCount() int {
	return c.orderCount
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// LastOrderDate returns nil for customers who never ordered.
func (c *Customer) LastOrderDate() *time.Time {
	if c.lastOrderDate == nil {
		return nil
	}
	t := *c.lastOrderDate
	return &t
}

// ChangeSegment moves the customer to another tier.
func (c *Customer) ChangeSegment(segment Segment) error {
	return c.setSegment(segment)
}

// UpdateProfile overwrites the contact details and the tier. Identity, creation
// time and purchase history survive. Nothing is changed when validation fails.
func (c *Customer) UpdateProfile(firstName, lastName, email, phone string, segment Segment) error {
	updated := *c
	if err := errors.Join(
		updated.setName(firstName, lastName),
		updated.setEmail(email),
		updated.setSegment(segment),
	); err != nil {
		return err
	}
	updated.phone = strings.TrimSpace(phone)

	*c = updated
	return nil
}

// ImportHistory replaces the purchase history, as when onboarding a customer
// migrated from another system. Nothing is changed when validation fails.
func (c *Customer) ImportHistory(totalSpent decimal.Decimal, orderCount int, lastOrderDate *time.Time) error {
	return c.setHistory(totalSpent, orderCount, lastOrderDate)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q has no @", email))
	}
	c.email = email
	return nil
}

func (c *Customer) setSegment(segment Segment) error {
	if err := segment.Validate(); err != nil {
		return err
	}
	c.segment = segment
	return nil
}

func (c *Customer) setHistory(totalSpent decimal.Decimal, orderCount int, lastOrderDate *time.Time) error {
	if err := kernel.ValidateAmount("total spent", totalSpent); err != nil {
		return err
	}
	if orderCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order count", fmt.Errorf("%d is negative", orderCount))
	}
	c.totalSpent = totalSpent
	c.orderCount = orderCount
	c.lastOrderDate = nil
	if lastOrderDate != nil {
		t := lastOrderDate.UTC()
		c.lastOrderDate = &t
	}
	return nil
}
