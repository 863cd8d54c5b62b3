// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one error type per failure category:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: a referenced order, offer, or message does not exist
//   - AccessDeniedError: the actor has no rights over the target entity
//   - InvalidStateError: the operation is illegal for the entity's current state
//   - DuplicateOperationError: a submission duplicates an existing one
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrAccessDenied)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Domain and application code return these errors synchronously; the HTTP
// boundary classifies them once with errors.Is and maps each category to a
// response status. Unrecognized errors are treated as internal failures.
package errs
