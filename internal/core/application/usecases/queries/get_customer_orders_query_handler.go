package queries

import (
	"context"
	"database/sql"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads order summaries straight from the orders table.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns an empty slice for customers without orders, including unknown customers.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			order_date,
			total_amount,
			discounted_amount,
			fulfilled_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY order_date DESC, id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row         GetCustomerOrdersQueryResponse
			id          uuid.UUID
			status      int
			fulfilledAt sql.NullTime
		)

		err = rows.Scan(
			&id,
			&row.TrackingNumber,
			&status,
			&row.OrderDate,
			&row.TotalAmount,
			&row.DiscountedAmount,
			&fulfilledAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID
		row.Status = order.Status(status)
		row.OrderDate = row.OrderDate.UTC()
		if fulfilledAt.Valid {
			t := fulfilledAt.Time.UTC()
			row.FulfilledAt = &t
		}

		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
