// Package queries contains read operations of the CQRS architecture.
// Handlers either read aggregates through narrow reader interfaces or run
// SQL directly against the database for list views.
package queries

import (
	"context"
	"time"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
)

type (
	// OrderReader loads single orders.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	}

	// OrderRangeReader loads the orders placed within a date range.
	OrderRangeReader interface {
		GetByDateRange(ctx context.Context, from, to *time.Time) ([]*order.Order, error)
	}

	// CustomerReader loads single customers.
	CustomerReader interface {
		Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	}

	// AnalyticsRecorder observes computed analytics reports.
	AnalyticsRecorder interface {
		ReportComputed(report services.AnalyticsReport)
	}
)

type nopAnalyticsRecorder struct{}

func (nopAnalyticsRecorder) ReportComputed(services.AnalyticsReport) {}
