package queries

import (
	"errors"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists the order history of one customer, newest first.
//
// Example:
//
//	query, _ := NewGetCustomerOrdersQuery(customerID)
//	history, err := handler.Handle(ctx, query)
//	for _, o := range history {
//	    fmt.Printf("%s %s %s\n", o.TrackingNumber, o.Status, o.DiscountedAmount)
//	}
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is the summary row of one order, without line items.
type GetCustomerOrdersQueryResponse struct {
	ID               kernel.UUID
	TrackingNumber   string
	Status           order.Status
	OrderDate        time.Time
	TotalAmount      decimal.Decimal
	DiscountedAmount decimal.Decimal
	FulfilledAt      *time.Time
}
