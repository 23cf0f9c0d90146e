package queries

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersPageQueryHandler reads order summaries joined with customer names.
type GetOrdersPageQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersPageQueryHandler(db *gorm.DB) GetOrdersPageQueryHandler {
	return GetOrdersPageQueryHandler{db: db}
}

// Handle returns an empty page past the last order; Total is still filled in.
func (h GetOrdersPageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersPageQuery,
) (GetOrdersPageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersPageQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	result := GetOrdersPageQueryResponse{
		Items:    make([]OrderSummary, 0, query.PageSize()),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	if err := db.Raw(`SELECT COUNT(*) FROM orders`).Row().Scan(&result.Total); err != nil {
		return GetOrdersPageQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			o.id,
			o.tracking_number,
			o.customer_id,
			COALESCE(c.first_name || ' ' || c.last_name, ''),
			o.status,
			o.order_date,
			o.total_amount,
			o.discounted_amount
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.order_date DESC, o.id
		LIMIT ? OFFSET ?
	`, query.PageSize(), query.Offset()).Rows()
	if err != nil {
		return GetOrdersPageQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row        OrderSummary
			id         uuid.UUID
			customerID uuid.UUID
			status     int
		)

		err = rows.Scan(
			&id,
			&row.TrackingNumber,
			&customerID,
			&row.CustomerName,
			&status,
			&row.OrderDate,
			&row.TotalAmount,
			&row.DiscountedAmount,
		)
		if err != nil {
			return GetOrdersPageQueryResponse{}, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetOrdersPageQueryResponse{}, err
		}
		if row.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return GetOrdersPageQueryResponse{}, err
		}
		row.Status = order.Status(status)
		row.OrderDate = row.OrderDate.UTC()

		result.Items = append(result.Items, row)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersPageQueryResponse{}, err
	}

	return result, nil
}
