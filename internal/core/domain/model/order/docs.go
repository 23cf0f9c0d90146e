// Package order holds the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning line items, amounts, status and tracking number
//   - LineItem: a product row contributing unit price × quantity to the total
//   - Status: the state machine Created -> Processing -> Shipped -> Delivered,
//     with Cancelled reachable from Created and Processing
//
// Key business rules:
//   - Totals are derived from line items, never set directly
//   - The discounted amount never exceeds the total
//   - Only Delivered orders carry a fulfillment timestamp
//   - A tracking number is immutable once assigned
package order
