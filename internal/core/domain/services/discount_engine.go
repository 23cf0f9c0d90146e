package services

import (
	"time"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Loyalty thresholds. Spend comparisons are strict, recency is measured in
// 30-day months.
var (
	LoyaltyHighSpendThreshold = decimal.NewFromInt(10000)
	LoyaltyMidSpendThreshold  = decimal.NewFromInt(5000)
)

const (
	LoyaltyHighRecencyMonths = 3
	LoyaltyMidRecencyMonths  = 6

	loyaltyMonth = 30 * 24 * time.Hour
)

// Bulk thresholds on the total quantity of an order. Comparisons are inclusive.
const (
	BulkLargeQuantity  = 20
	BulkMediumQuantity = 10
	BulkSmallQuantity  = 5
)

var (
	platinumRate = decimal.RequireFromString("0.15")
	goldRate     = decimal.RequireFromString("0.10")
	silverRate   = decimal.RequireFromString("0.05")

	loyaltyHighRate = decimal.RequireFromString("0.20")
	loyaltyMidRate  = decimal.RequireFromString("0.10")

	bulkLargeRate  = decimal.RequireFromString("0.25")
	bulkMediumRate = decimal.RequireFromString("0.15")
	bulkSmallRate  = decimal.RequireFromString("0.05")
)

// Clock returns the current time. Tests pin it to make loyalty recency deterministic.
type Clock func() time.Time

// DiscountEngine picks the discount rate of an order from three independent rules:
// the customer segment, the customer loyalty and the order size. The best rule wins;
// rates never stack.
//
// Example usage:
//
//	engine := services.NewDiscountEngine(time.Now)
//	rate := engine.ComputeDiscount(o, c)
//	_ = o.ApplyDiscount(rate)
type DiscountEngine struct {
	now Clock
}

// NewDiscountEngine creates an engine reading the current time from now.
// A nil clock falls back to time.Now.
func NewDiscountEngine(now Clock) DiscountEngine {
	if now == nil {
		now = time.Now
	}
	return DiscountEngine{now: now}
}

// ComputeDiscount returns the highest of the segment, loyalty and bulk rates.
// A nil customer gets no discount. The result always lies in [0, 1].
func (e DiscountEngine) ComputeDiscount(o *order.Order, c *customer.Customer) decimal.Decimal {
	if c == nil || o == nil {
		return decimal.Zero
	}

	return decimal.Max(
		SegmentRate(c.Segment()),
		LoyaltyRate(c.TotalSpent(), c.LastOrderDate(), e.now()),
		BulkRate(o.TotalQuantity()),
	)
}

// SegmentRate maps a tier to its fixed rate.
func SegmentRate(segment customer.Segment) decimal.Decimal {
	switch segment {
	case customer.Platinum:
		return platinumRate
	case customer.Gold:
		return goldRate
	case customer.Silver:
		return silverRate
	default:
		return decimal.Zero
	}
}

// LoyaltyRate rewards customers who spent a lot and ordered recently.
// Customers without a previous order get nothing.
func LoyaltyRate(totalSpent decimal.Decimal, lastOrderDate *time.Time, now time.Time) decimal.Decimal {
	if lastOrderDate == nil {
		return decimal.Zero
	}

	elapsed := now.Sub(*lastOrderDate)
	switch {
	case totalSpent.GreaterThan(LoyaltyHighSpendThreshold) && elapsed < LoyaltyHighRecencyMonths*loyaltyMonth:
		return loyaltyHighRate
	case totalSpent.GreaterThan(LoyaltyMidSpendThreshold) && elapsed < LoyaltyMidRecencyMonths*loyaltyMonth:
		return loyaltyMidRate
	default:
		return decimal.Zero
	}
}

// BulkRate rewards large orders by their total quantity.
func BulkRate(totalQuantity int) decimal.Decimal {
	switch {
	case totalQuantity >= BulkLargeQuantity:
		return bulkLargeRate
	case totalQuantity >= BulkMediumQuantity:
		return bulkMediumRate
	case totalQuantity >= BulkSmallQuantity:
		return bulkSmallRate
	default:
		return decimal.Zero
	}
}
