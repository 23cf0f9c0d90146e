package commands

import (
	"errors"
	"fmt"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is the caller's view of a line item before it becomes part of an order.
type OrderLine struct {
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// CreateOrderCommand represents a request to place a new order for an existing customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, []OrderLine{
//	    {ProductName: "Keyboard", UnitPrice: decimal.NewFromInt(50), Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers and turns every line into a line item.
// All problems are reported together.
func NewCreateOrderCommand(orderID, customerID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the validated line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(lines []OrderLine) error {
	items, err := buildLineItems(lines)
	if err != nil {
		return err
	}

	c.items = items
	return nil
}

// buildLineItems converts request lines into line items with fresh identifiers.
func buildLineItems(lines []OrderLine) ([]order.LineItem, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("line items")
	}

	items := make([]order.LineItem, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		item, err := order.NewLineItem(kernel.NewUUID(), line.ProductName, line.UnitPrice, line.Quantity)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}

	return items, nil
}
