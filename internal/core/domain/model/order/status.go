package order

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Every pair not drawn above, including
// self-transitions, is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of every new order.
	Created

	// Processing means the order is being prepared.
	Processing

	// Shipped means the order has left the warehouse.
	Shipped

	// Delivered means the customer received the order. Reaching it stamps the
	// fulfillment timestamp. Terminal.
	Delivered

	// Cancelled means the order was abandoned before shipping. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getAllowedTransitions lists the only permitted moves. Terminal statuses have no entry.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses allow nothing
	return map[Status][]Status{
		Created:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Processing, Shipped, Delivered, Cancelled}
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether s → next is one of the allowed pairs.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when s → next is allowed.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, *errs.InvalidTransitionError) otherwise
//
// Example:
//
//	newStatus, err := order.Shipped.TransitionTo(order.Delivered)
//	if err != nil {
//	    // errors.Is(err, errs.ErrInvalidTransition)
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError("", s.String(), next.String())
	}
	return next, nil
}

// ParseStatus resolves a status by name, as sent over HTTP.
func ParseStatus(name string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}
