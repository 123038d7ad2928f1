// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the checkout snapshot and the status
//   - Status: a state machine with PendingProcessing as the only non-terminal state
//   - FeeBreakdown and Payment: values frozen into the order at checkout
//   - InvalidTransitionError and InsufficientInventoryError
//   - Domain events consumed through the outbox
//
// Key business rules:
//   - Approve, Reject and Cancel are only allowed from PendingProcessing
//   - Approval re-checks stock against a snapshot supplied by the caller
//   - Every transition is all or nothing
package order
