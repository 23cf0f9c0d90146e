// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
package customerrepo

import (
	"time"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FirstName     string          `gorm:"type:varchar(100);not null"`
	LastName      string          `gorm:"type:varchar(100);not null"`
	Email         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone         string          `gorm:"type:varchar(32)"`
	Segment       int             `gorm:"type:smallint;not null;index"`
	TotalSpent    decimal.Decimal `gorm:"type:numeric;not null"`
	OrderCount    int             `gorm:"type:int;not null"`
	LastOrderDate *time.Time      `gorm:"type:timestamptz"`
	CreatedAt     time.Time       `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		FirstName:     aggregate.FirstName(),
		LastName:      aggregate.LastName(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		Segment:       int(aggregate.Segment()),
		TotalSpent:    aggregate.TotalSpent(),
		OrderCount:    aggregate.OrderCount(),
		LastOrderDate: aggregate.LastOrderDate(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate through RestoreCustomer so stored rows are re-validated.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.Phone,
		customer.Segment(dto.Segment),
		dto.TotalSpent,
		dto.OrderCount,
		dto.LastOrderDate,
		dto.CreatedAt.UTC(),
	)
}
