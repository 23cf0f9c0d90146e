package queries

import (
	"errors"
	"time"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomersBySegmentQueryIsNotConstructed = errors.New(
	"GetCustomersBySegmentQuery must be created via NewGetCustomersBySegmentQuery constructor",
)

// GetCustomersBySegmentQuery lists the customers of one tier.
type GetCustomersBySegmentQuery struct {
	segment customer.Segment

	guard guard.ConstructorGuard
}

func NewGetCustomersBySegmentQuery(segment customer.Segment) (GetCustomersBySegmentQuery, error) {
	if err := segment.Validate(); err != nil {
		return GetCustomersBySegmentQuery{}, err
	}
	return GetCustomersBySegmentQuery{segment: segment, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomersBySegmentQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersBySegmentQueryIsNotConstructed)
}

func (q GetCustomersBySegmentQuery) Segment() customer.Segment {
	return q.segment
}

// GetCustomersBySegmentQueryResponse is the list view of a customer.
type GetCustomersBySegmentQueryResponse struct {
	ID            kernel.UUID
	FirstName     string
	LastName      string
	Email         string
	Segment       customer.Segment
	TotalSpent    decimal.Decimal
	OrderCount    int
	LastOrderDate *time.Time
}
