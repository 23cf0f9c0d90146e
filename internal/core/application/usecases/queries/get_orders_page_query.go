package queries

import (
	"errors"
	"math"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var ErrGetOrdersPageQueryIsNotConstructed = errors.New(
	"GetOrdersPageQuery must be created via NewGetOrdersPageQuery constructor",
)

// GetOrdersPageQuery reads one page of the order list, newest first. Pages are 1-based.
//
// Example:
//
//	query, _ := NewGetOrdersPageQuery(2, 25)
//	page, err := handler.Handle(ctx, query)
//	// page.Items holds orders 26..50, page.Total counts every order
type GetOrdersPageQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

func NewGetOrdersPageQuery(page, pageSize int) (GetOrdersPageQuery, error) {
	if err := errors.Join(
		validatePage(page),
		validatePageSize(pageSize),
	); err != nil {
		return GetOrdersPageQuery{}, err
	}

	return GetOrdersPageQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersPageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPageQueryIsNotConstructed)
}

func (q GetOrdersPageQuery) Page() int {
	return q.page
}

func (q GetOrdersPageQuery) PageSize() int {
	return q.pageSize
}

// Offset is the number of orders on the preceding pages.
func (q GetOrdersPageQuery) Offset() int64 {
	return int64(q.page-1) * int64(q.pageSize)
}

func validatePage(page int) error {
	if page < 1 || page > math.MaxInt32 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt32)
	}
	return nil
}

func validatePageSize(pageSize int) error {
	if pageSize < 1 || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("page size", pageSize, 1, MaxPageSize)
	}
	return nil
}

// OrderSummary is one row of the order list. CustomerName is empty when the
// customer record no longer exists.
type OrderSummary struct {
	ID               kernel.UUID
	TrackingNumber   string
	CustomerID       kernel.UUID
	CustomerName     string
	Status           order.Status
	OrderDate        time.Time
	TotalAmount      decimal.Decimal
	DiscountedAmount decimal.Decimal
}

// GetOrdersPageQueryResponse carries one page and the overall order count.
type GetOrdersPageQueryResponse struct {
	Items    []OrderSummary
	Total    int64
	Page     int
	PageSize int
}
