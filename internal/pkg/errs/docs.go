// Package errs provides standardized error types for the driver application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found or is not
//     visible to the caller
//   - IllegalTransitionError: For order status changes that violate the
//     lifecycle state machine
//   - MissingRequiredDataError: For transitions lacking required metadata
//     (e.g. completing a delivery without a photo proof)
//   - ConcurrentModificationError: For stale-state write conflicts detected
//     by the backing store
//   - UpstreamFailureError: For unreachable data stores or external services;
//     always retryable by the caller
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All failures surface to callers as typed error values, never as panics used
// for control flow; classification happens via errors.Is against the sentinels.
package errs
