package queries

import (
	"errors"

	"oms/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery lists every customer regardless of tier.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetAllCustomersQueryResponse shares the list view of the segment listing.
type GetAllCustomersQueryResponse = GetCustomersBySegmentQueryResponse
