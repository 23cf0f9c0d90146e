package orderrepo

import (
	"context"
	"errors"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items.
// A duplicate identifier or tracking number yields *errs.ObjectConflictError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column of the order and replaces its line items.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Omit("Items").Updates(&dto)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.Items).Error; err != nil {
		return translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order together with its line items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetByDateRange retrieves the orders placed within [from, to], oldest first.
func (r *GormOrderRepository) GetByDateRange(ctx context.Context, from, to *time.Time) ([]*order.Order, error) {
	query := r.withItems(ctx)
	if from != nil {
		query = query.Where("order_date >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("order_date <= ?", to.UTC())
	}

	var dtos []OrderDTO
	if err := query.Order("order_date, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByCustomer retrieves the orders of a customer, newest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("order_date DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// MaxTrackingSequence returns the highest numeric suffix over all well-formed tracking numbers.
func (r *GormOrderRepository) MaxTrackingSequence(ctx context.Context) (int64, error) {
	var maxSequence int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(split_part(tracking_number, '-', 3) AS bigint)), 0)
		FROM orders
		WHERE tracking_number ~ '^ORD-[0-9]{8}-[0-9]+$'
	`).Scan(&maxSequence).Error
	if err != nil {
		return 0, err
	}

	return maxSequence, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// translate maps unique violations to conflict errors. gorm reports them as
// gorm.ErrDuplicatedKey when the connection is opened with TranslateError.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectConflictError("order", err)
	}
	return err
}
