// Package kernel provides the shared value objects of the order management domain.
//
// The package includes:
//   - UUID: identifier for orders, customers and line items, invalid as a zero value
//   - Money helpers: validation of decimal amounts and discount rates, and rate application
//
// Amounts are github.com/shopspring/decimal values so that totals and discounted
// amounts are exact.
package kernel
