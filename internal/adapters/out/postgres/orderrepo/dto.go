// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in the orders table and its line items in order_items.
package orderrepo

import (
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Amounts use an unbounded numeric column so discounted amounts survive a round trip exactly.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderDate        time.Time       `gorm:"type:timestamptz;not null;index"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric;not null"`
	DiscountedAmount decimal.Decimal `gorm:"type:numeric;not null"`
	Status           int             `gorm:"type:smallint;not null;index"`
	FulfilledAt      *time.Time      `gorm:"type:timestamptz"`
	TrackingNumber   string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Items            []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one row of order_items. Position keeps the original line order.
type LineItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"type:int;not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity    int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			Position:    i,
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		CustomerID:       aggregate.CustomerID().Bytes(),
		OrderDate:        aggregate.OrderDate(),
		TotalAmount:      aggregate.TotalAmount(),
		DiscountedAmount: aggregate.DiscountedAmount(),
		Status:           int(aggregate.Status()),
		FulfilledAt:      aggregate.FulfilledAt(),
		TrackingNumber:   aggregate.TrackingNumber(),
		Items:            items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Items must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var fulfilledAt *time.Time
	if dto.FulfilledAt != nil {
		t := dto.FulfilledAt.UTC()
		fulfilledAt = &t
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.OrderDate.UTC(),
		items,
		dto.DiscountedAmount,
		order.Status(dto.Status),
		fulfilledAt,
		dto.TrackingNumber,
	)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(id, dto.ProductName, dto.UnitPrice, dto.Quantity)
}
