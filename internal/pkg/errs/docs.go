// Package errs provides standardized error types for the order management core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when a referenced customer or order cannot be found
//   - ObjectConflictError: For when a write collides with a stored unique value
//   - InvalidTransitionError: For when an order status change is not permitted
//   - ComputationError: For when an aggregation step cannot complete
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels. The HTTP adapter
// relies on this to map not-found to 404, invalid transitions and conflicts
// to 409 and computation failures to 500.
package errs
