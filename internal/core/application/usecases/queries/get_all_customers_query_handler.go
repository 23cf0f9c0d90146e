package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle returns every customer sorted by last name, then first name.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			segment,
			total_spent,
			order_count,
			last_order_date
		FROM customers
		ORDER BY last_name, first_name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}
