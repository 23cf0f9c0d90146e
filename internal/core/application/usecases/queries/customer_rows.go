package queries

import (
	"database/sql"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanCustomerRows maps the list-view columns selected by the customer queries:
// id, first_name, last_name, email, segment, total_spent, order_count, last_order_date.
func scanCustomerRows(rows *sql.Rows) ([]GetCustomersBySegmentQueryResponse, error) {
	result := make([]GetCustomersBySegmentQueryResponse, 0)

	for rows.Next() {
		var (
			row           GetCustomersBySegmentQueryResponse
			id            uuid.UUID
			segment       int
			lastOrderDate sql.NullTime
		)

		err := rows.Scan(
			&id,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&segment,
			&row.TotalSpent,
			&row.OrderCount,
			&lastOrderDate,
		)
		if err != nil {
			return nil, err
		}

		customerID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		row.ID = customerID
		row.Segment = customer.Segment(segment)
		if lastOrderDate.Valid {
			t := lastOrderDate.Time.UTC()
			row.LastOrderDate = &t
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
