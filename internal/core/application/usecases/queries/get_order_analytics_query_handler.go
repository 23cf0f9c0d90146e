package queries

import (
	"context"
	"fmt"

	"oms/internal/core/domain/services"
)

// GetOrderAnalyticsQueryHandler loads the orders of a date range and aggregates them.
type GetOrderAnalyticsQueryHandler struct {
	orders     OrderRangeReader
	aggregator services.AnalyticsAggregator
	recorder   AnalyticsRecorder
}

// NewGetOrderAnalyticsQueryHandler creates the handler. A nil recorder records nothing.
func NewGetOrderAnalyticsQueryHandler(
	orders OrderRangeReader,
	aggregator services.AnalyticsAggregator,
	recorder AnalyticsRecorder,
) GetOrderAnalyticsQueryHandler {
	if recorder == nil {
		recorder = nopAnalyticsRecorder{}
	}
	return GetOrderAnalyticsQueryHandler{
		orders:     orders,
		aggregator: aggregator,
		recorder:   recorder,
	}
}

// Handle returns *errs.ComputationError when the averages cannot be computed.
func (h GetOrderAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAnalyticsQuery,
) (services.AnalyticsReport, error) {
	if err := query.Validate(); err != nil {
		return services.AnalyticsReport{}, err
	}

	orders, err := h.orders.GetByDateRange(ctx, query.From(), query.To())
	if err != nil {
		return services.AnalyticsReport{}, fmt.Errorf("load orders for analytics: %w", err)
	}

	report, err := h.aggregator.Aggregate(orders)
	if err != nil {
		return services.AnalyticsReport{}, err
	}

	h.recorder.ReportComputed(report)
	return report, nil
}
