package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxQuantity bounds a single line so it fits the integer column it is stored in.
const MaxQuantity = math.MaxInt32

// LineItem is one product row of an order. It has no lifecycle of its own.
type LineItem struct {
	id          kernel.UUID
	productName string
	unitPrice   decimal.Decimal
	quantity    int
}

// NewLineItem validates and builds an order line.
// Quantity must lie in [1, MaxQuantity] and the unit price must be non-negative.
func NewLineItem(id kernel.UUID, productName string, unitPrice decimal.Decimal, quantity int) (LineItem, error) {
	var item LineItem

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) ID() kernel.UUID {
	return i.id
}

func (i LineItem) ProductName() string {
	return i.productName
}

func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i LineItem) Quantity() int {
	return i.quantity
}

// Total returns unit price × quantity.
func (i LineItem) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = name
	return nil
}

func (i *LineItem) setUnitPrice(price decimal.Decimal) error {
	if err := kernel.ValidateAmount("unit price", price); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}
