package services

import (
	"fmt"
	"math"
	"time"

	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AnalyticsReport summarises delivered orders.
type AnalyticsReport struct {
	AverageOrderValue      decimal.Decimal
	AverageFulfillmentTime time.Duration
	DeliveredOrders        int
	ConsideredOrders       int
}

// AnalyticsAggregator computes order statistics. It is stateless; date filtering
// happens before the orders reach it.
type AnalyticsAggregator struct{}

func NewAnalyticsAggregator() AnalyticsAggregator {
	return AnalyticsAggregator{}
}

// Aggregate averages the discounted amount and the fulfillment time of delivered orders.
// Orders in any other status, or without a fulfillment timestamp, are skipped.
// No contributing order yields a zero report.
//
// Returns *errs.ComputationError when the total fulfillment time overflows time.Duration.
func (AnalyticsAggregator) Aggregate(orders []*order.Order) (AnalyticsReport, error) {
	report := AnalyticsReport{
		AverageOrderValue: decimal.Zero,
		ConsideredOrders:  len(orders),
	}

	totalValue := decimal.Zero
	var totalTime time.Duration
	for _, o := range orders {
		if o == nil {
			continue
		}
		elapsed, ok := o.FulfillmentTime()
		if !ok {
			continue
		}

		sum, err := addDurations(totalTime, elapsed)
		if err != nil {
			return AnalyticsReport{}, errs.NewComputationError("average fulfillment time", err)
		}
		totalTime = sum
		totalValue = totalValue.Add(o.DiscountedAmount())
		report.DeliveredOrders++
	}

	if report.DeliveredOrders == 0 {
		return report, nil
	}

	count := report.DeliveredOrders
	report.AverageOrderValue = totalValue.Div(decimal.NewFromInt(int64(count)))
	report.AverageFulfillmentTime = totalTime / time.Duration(count)
	return report, nil
}

func addDurations(a, b time.Duration) (time.Duration, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%s + %s overflows", a, b)
	}
	return a + b, nil
}
