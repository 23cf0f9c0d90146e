// Package services holds the stateless and process-wide domain services of the
// ordering domain.
//
// The package includes:
//   - DiscountEngine: picks the best of the segment, loyalty and bulk rates for an order
//   - TrackingNumberAllocator: mints unique ORD-YYYYMMDD-NNNNNN tracking numbers
//     from an atomic sequence shared by every caller
//   - AnalyticsAggregator: averages order value and fulfillment time of delivered orders
//
// Services never touch storage. Use cases load aggregates, call the services and
// persist the result within a unit of work.
package services
