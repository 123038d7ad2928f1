package order

import (
	"fmt"
	"strings"

	"aims/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions. Orders start in
// PendingProcessing and are driven by staff into one of three terminal states.
//
// State transitions:
//
//	PendingProcessing ──┬──> Approved
//	                    ├──> Rejected
//	                    └──> Cancelled
//
// No transition leaves a terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingProcessing is the initial status of a placed and paid order
	// waiting for staff review.
	PendingProcessing

	// Approved means stock was sufficient and the order goes to fulfilment.
	Approved

	// Rejected means staff declined the order.
	Rejected

	// Cancelled means the order was withdrawn before review. A refund follows downstream.
	Cancelled
)

// Action names a lifecycle transition.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		PendingProcessing: "PENDING_PROCESSING",
		Approved:          "APPROVED",
		Rejected:          "REJECTED",
		Cancelled:         "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingProcessing: "PENDING_PROCESSING",
		Approved:          "APPROVED",
		Rejected:          "REJECTED",
		Cancelled:         "CANCELLED",
	}
}

// ParseStatus converts a persisted or user-supplied name, e.g. "APPROVED", back
// into a Status. Matching ignores case and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and values outside the enum are invalid. Used on values coming
// from the database or the API.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PENDING_PROCESSING".
// Invalid values print as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected || s == Cancelled
}

// Approve transitions PendingProcessing to Approved.
//
// Returns:
//   - (Approved, nil) on valid transition
//   - (0, *InvalidTransitionError) from any other status
//
// Stock sufficiency is not a status concern; Order.Approve checks it.
func (s Status) Approve() (Status, error) {
	return s.transition(ActionApprove, Approved)
}

// Reject transitions PendingProcessing to Rejected.
func (s Status) Reject() (Status, error) {
	return s.transition(ActionReject, Rejected)
}

// Cancel transitions PendingProcessing to Cancelled. Cancelling an order that
// was already reviewed fails with *InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	return s.transition(ActionCancel, Cancelled)
}

func (s Status) transition(action Action, to Status) (Status, error) {
	if s != PendingProcessing {
		return 0, &InvalidTransitionError{From: s, Action: action}
	}
	return to, nil
}
