package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTrackingNumberAlreadyAssigned is returned when a different tracking number
	// is assigned to an order that already carries one.
	ErrTrackingNumberAlreadyAssigned = errors.New("tracking number is already assigned")
)

// Order is the aggregate root of the ordering domain. It owns its line items and
// keeps the amounts consistent with them.
//
// Order follows these invariants:
//   - Must have a valid identifier and customer identifier
//   - Carries at least one line item
//   - Discounted amount never exceeds the total amount
//   - Fulfillment timestamp is set if and only if the status is Delivered
//   - Tracking number never changes once assigned
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	orderDate  time.Time
	items      []LineItem
	quantity   int

	// totalAmount is Σ line totals, discountedAmount is totalAmount × (1 − rate)
	totalAmount      decimal.Decimal
	discountedAmount decimal.Decimal

	status         Status
	fulfilledAt    *time.Time
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewOrder places an order dated now in Created status.
// The discounted amount starts equal to the total until ApplyDiscount is called.
//
// Example:
//
//	item, _ := order.NewLineItem(kernel.NewUUID(), "Keyboard", decimal.NewFromInt(50), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{item}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, customerID kernel.UUID, items []LineItem, now time.Time) (*Order, error) {
	o := &Order{
		orderDate: now.UTC(),
		status:    Created,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.discountedAmount = o.totalAmount

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state and re-checks the aggregate invariants.
// The total amount is recomputed from the items.
func RestoreOrder(
	id, customerID kernel.UUID,
	orderDate time.Time,
	items []LineItem,
	discountedAmount decimal.Decimal,
	status Status,
	fulfilledAt *time.Time,
	trackingNumber string,
) (*Order, error) {
	o := &Order{
		orderDate:      orderDate,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setStatus(status, fulfilledAt),
	); err != nil {
		return nil, err
	}
	if err := o.setDiscountedAmount(discountedAmount); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Items returns a copy of the line items in their original order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) DiscountedAmount() decimal.Decimal {
	return o.discountedAmount
}

func (o *Order) Status() Status {
	return o.status
}

// FulfilledAt returns a copy of the fulfillment timestamp, or nil while the order is not delivered.
func (o *Order) FulfilledAt() *time.Time {
	if o.fulfilledAt == nil {
		return nil
	}
	t := *o.fulfilledAt
	return &t
}

func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// TotalQuantity returns Σ quantity across line items.
func (o *Order) TotalQuantity() int {
	return o.quantity
}

// FulfillmentTime is the time between placing and delivering the order.
// The second value is false when the order has not been delivered.
func (o *Order) FulfillmentTime() (time.Duration, bool) {
	if o.status != Delivered || o.fulfilledAt == nil {
		return 0, false
	}
	return o.fulfilledAt.Sub(o.orderDate), true
}

// ApplyDiscount sets the discounted amount to total × (1 − rate).
// The rate must lie in [0, 1].
func (o *Order) ApplyDiscount(rate decimal.Decimal) error {
	if err := kernel.ValidateRate(rate); err != nil {
		return err
	}
	o.discountedAmount = kernel.ApplyRate(o.totalAmount, rate)
	return nil
}

// AssignTrackingNumber stores the tracking number. Assigning the same value twice is a no-op,
// assigning a different one fails with ErrTrackingNumberAlreadyAssigned.
func (o *Order) AssignTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	if o.trackingNumber != "" && o.trackingNumber != trackingNumber {
		return fmt.Errorf("%w: order %s has %s", ErrTrackingNumberAlreadyAssigned, o.id, o.trackingNumber)
	}
	o.trackingNumber = trackingNumber
	return nil
}

// TransitionTo moves the order along its lifecycle. Reaching Delivered stamps the
// fulfillment timestamp with now. Amounts are left untouched.
//
// Returns:
//   - nil on a valid transition
//   - *errs.InvalidTransitionError when the state machine forbids the move
func (o *Order) TransitionTo(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), next.String())
	}

	o.status = newStatus
	if newStatus == Delivered {
		fulfilledAt := now.UTC()
		o.fulfilledAt = &fulfilledAt
	}
	return nil
}

// Replace overwrites the customer, the line items and the status in one step without
// consulting the state machine. Identity, order date and tracking number survive.
// The fulfillment timestamp is kept (or stamped with now) when status is Delivered
// and cleared otherwise. The discounted amount is reset to the new total, so callers
// apply the recomputed discount afterwards.
func (o *Order) Replace(customerID kernel.UUID, items []LineItem, status Status, now time.Time) error {
	var fulfilledAt *time.Time
	if status == Delivered {
		fulfilledAt = o.fulfilledAt
		if fulfilledAt == nil {
			stamp := now.UTC()
			fulfilledAt = &stamp
		}
	}

	replacement := *o
	if err := errors.Join(
		replacement.setCustomerID(customerID),
		replacement.setItems(items),
		replacement.setStatus(status, fulfilledAt),
	); err != nil {
		return err
	}
	replacement.discountedAmount = replacement.totalAmount

	*o = replacement
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	total := decimal.Zero
	quantity := 0
	for _, item := range items {
		if err := item.id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("line item", err)
		}
		next, err := addQuantity(quantity, item.quantity)
		if err != nil {
			return err
		}
		quantity = next
		total = total.Add(item.Total())
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.quantity = quantity
	o.totalAmount = total
	return nil
}

// addQuantity sums line quantities and fails instead of wrapping around.
func addQuantity(sum, quantity int) (int, error) {
	if quantity > math.MaxInt-sum {
		return 0, errs.NewValueIsOutOfRangeError("total quantity", fmt.Sprintf("%d + %d", sum, quantity), 1, math.MaxInt)
	}
	return sum + quantity, nil
}

func (o *Order) setStatus(status Status, fulfilledAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if (status == Delivered) != (fulfilledAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment timestamp",
			fmt.Errorf("must be set if and only if status is %s, status is %s", Delivered, status))
	}

	o.status = status
	if fulfilledAt == nil {
		o.fulfilledAt = nil
		return nil
	}
	t := *fulfilledAt
	o.fulfilledAt = &t
	return nil
}

func (o *Order) setDiscountedAmount(amount decimal.Decimal) error {
	if err := kernel.ValidateAmount("discounted amount", amount); err != nil {
		return err
	}
	if amount.GreaterThan(o.totalAmount) {
		return errs.NewValueIsOutOfRangeError("discounted amount", amount.String(), "0", o.totalAmount.String())
	}
	o.discountedAmount = amount
	return nil
}
