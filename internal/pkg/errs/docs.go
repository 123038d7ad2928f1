// Package errs provides the generic error kinds shared by the storefront's
// domain model and adapters.
//
// Each kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange,
//     ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the offending parameter
//   - Unwrap returning the sentinel, plus the cause where the kind carries one
//
// Domain-specific failures (payment, inventory, lifecycle transitions, delivery
// field validation) live next to the code that raises them.
package errs
