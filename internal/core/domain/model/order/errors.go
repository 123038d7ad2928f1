package order

import (
	"errors"
	"fmt"
	"strings"

	"aims/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidTransition is matched by errors.Is for every *InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrInsufficientInventory is matched by errors.Is for every *InsufficientInventoryError.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// InvalidTransitionError reports an action attempted from a status that does not allow it.
type InvalidTransitionError struct {
	From   Status
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %s", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Shortage is one product an order asks more units of than are on hand.
type Shortage struct {
	ProductID kernel.UUID
	Title     string
	Requested int
	Available int
}

// InsufficientInventoryError blocks approval and lists every shortage found.
type InsufficientInventoryError struct {
	Shortages []Shortage
}

func (e *InsufficientInventoryError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (%s): requested %d, available %d", s.Title, s.ProductID, s.Requested, s.Available))
	}
	return fmt.Sprintf("%s: %s", ErrInsufficientInventory, strings.Join(parts, "; "))
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}
