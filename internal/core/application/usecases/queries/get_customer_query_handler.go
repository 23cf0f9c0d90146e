package queries

import (
	"context"

	"oms/internal/core/domain/model/customer"
)

type GetCustomerQueryHandler struct {
	customers CustomerReader
}

func NewGetCustomerQueryHandler(customers CustomerReader) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

// Handle returns *errs.ObjectNotFoundError when the customer does not exist.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (*customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.customers.Get(ctx, query.CustomerID())
}
