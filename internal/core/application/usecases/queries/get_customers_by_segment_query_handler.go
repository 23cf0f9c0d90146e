package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomersBySegmentQueryHandler reads the customer list view with a single SQL query.
type GetCustomersBySegmentQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersBySegmentQueryHandler(db *gorm.DB) GetCustomersBySegmentQueryHandler {
	return GetCustomersBySegmentQueryHandler{db: db}
}

// Handle returns the customers sorted by last name, then first name.
func (h GetCustomersBySegmentQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersBySegmentQuery,
) ([]GetCustomersBySegmentQueryResponse, error) {
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
		WHERE segment = ?
		ORDER BY last_name, first_name, id
	`, int(query.Segment())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}
