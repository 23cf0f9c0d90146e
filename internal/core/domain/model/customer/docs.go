// Package customer models the buyer aggregate and its loyalty segment.
//
// Customers are read-only inputs to discount computation: the segment drives
// the base discount, and the cumulative spend together with the last order
// date drives the loyalty discount.
package customer
