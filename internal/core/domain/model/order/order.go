package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderHasNoLines is returned for an order without items.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")
	// ErrCancelReasonIsRequired is returned when cancelling without a reason.
	ErrCancelReasonIsRequired = errs.NewValueIsRequiredError("cancel reason")
)

// Order is the aggregate root of a placed storefront order.
//
// Order follows these invariants:
//   - Lines, delivery info, fees and payment are a frozen snapshot taken at checkout
//   - The total amount always equals the sum of the fee breakdown
//   - Status is the only business field that changes after creation, and
//     only through Approve, Reject and Cancel
//   - A failed transition leaves the order untouched
//
// Orders record domain events for every lifecycle change. The unit of work
// drains them into the outbox when the transaction commits.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// lines are the cart lines with their locked-in unit prices
	lines []cart.Line

	// delivery is the shopper's delivery form as submitted
	delivery delivery.Info

	// fees is the pricing at checkout
	fees FeeBreakdown

	// payment is the receipt returned by the payment gateway
	payment Payment

	// status represents the current state in the order lifecycle
	status Status

	// reason and comments explain a rejection or cancellation
	reason   string
	comments string

	createdAt time.Time

	events []kernel.DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed order in PendingProcessing and records a
// PlacedEvent. All inputs are copied, so later changes to the caller's
// slices do not leak into the order.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), cart.Lines(), info, fees, receipt, time.Now())
func NewOrder(
	id kernel.UUID,
	lines []cart.Line,
	info delivery.Info,
	fees FeeBreakdown,
	payment Payment,
	createdAt time.Time,
) (*Order, error) {
	o, err := build(id, lines, info, fees, payment, PendingProcessing, "", "", createdAt)
	if err != nil {
		return nil, err
	}

	o.record(PlacedEvent{
		OrderID:       o.id,
		ID:            o.id.String(),
		Lines:         o.eventLines(),
		TotalAmount:   o.TotalAmount().Int64(),
		Email:         o.delivery.Email,
		TransactionID: o.payment.TransactionID,
		At:            o.createdAt,
	})
	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence. No events are recorded.
func RestoreOrder(
	id kernel.UUID,
	lines []cart.Line,
	info delivery.Info,
	fees FeeBreakdown,
	payment Payment,
	status Status,
	reason string,
	comments string,
	createdAt time.Time,
) (*Order, error) {
	return build(id, lines, info, fees, payment, status, reason, comments, createdAt)
}

func build(
	id kernel.UUID,
	lines []cart.Line,
	info delivery.Info,
	fees FeeBreakdown,
	payment Payment,
	status Status,
	reason string,
	comments string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		delivery:      info,
		reason:        reason,
		comments:      comments,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
		o.setFees(fees),
		o.setPayment(payment),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID             { return o.id }
func (o *Order) Lines() []cart.Line          { return slices.Clone(o.lines) }
func (o *Order) DeliveryInfo() delivery.Info { return o.delivery }
func (o *Order) Fees() FeeBreakdown          { return o.fees }
func (o *Order) Payment() Payment            { return o.payment }
func (o *Order) Status() Status              { return o.status }
func (o *Order) Reason() string              { return o.reason }
func (o *Order) Comments() string            { return o.comments }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }

// TotalAmount is the amount charged at checkout.
func (o *Order) TotalAmount() kernel.Money {
	return o.fees.Total()
}

// RequiredStock sums the ordered units per product.
func (o *Order) RequiredStock() map[kernel.UUID]int {
	required := make(map[kernel.UUID]int, len(o.lines))
	for _, l := range o.lines {
		required[l.ProductID()] += l.Quantity()
	}
	return required
}

// ProductIDs returns the distinct ordered products sorted by id. Callers lock
// product rows in this order.
func (o *Order) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.lines))
	for id := range o.RequiredStock() {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// Approve moves the order to Approved after checking the current stock.
//
// Business rules:
//   - Only a PendingProcessing order can be approved (*InvalidTransitionError otherwise)
//   - Every product must have at least the ordered units on hand; products
//     missing from stock count as zero (*InsufficientInventoryError listing
//     every shortage otherwise)
//
// On any failure the order is unchanged. Approve does not withdraw stock.
// The ApprovedEvent is stamped with at.
func (o *Order) Approve(stock catalog.StockLevels, at time.Time) error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	required := o.RequiredStock()
	var shortages []Shortage
	for _, id := range o.ProductIDs() {
		requested := required[id]
		if available := stock.Available(id); requested > available {
			shortages = append(shortages, Shortage{
				ProductID: id,
				Title:     o.titleOf(id),
				Requested: requested,
				Available: available,
			})
		}
	}
	if len(shortages) > 0 {
		return &InsufficientInventoryError{Shortages: shortages}
	}

	o.status = newStatus
	o.record(ApprovedEvent{OrderID: o.id, ID: o.id.String(), Lines: o.eventLines(), At: at.UTC()})
	return nil
}

// Reject moves a PendingProcessing order to Rejected. The reason is optional.
func (o *Order) Reject(reason string, at time.Time) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.reason = strings.TrimSpace(reason)
	o.record(RejectedEvent{OrderID: o.id, ID: o.id.String(), Reason: o.reason, At: at.UTC()})
	return nil
}

// Cancel moves a PendingProcessing order to Cancelled and records a
// CancelledEvent carrying the refund amount and the original transaction.
//
// Business rules:
//   - Only a PendingProcessing order can be cancelled (*InvalidTransitionError otherwise)
//   - reason is required: a blank or whitespace-only reason fails with
//     ErrCancelReasonIsRequired and leaves the order unchanged
//   - comments are optional
func (o *Order) Cancel(reason, comments string, at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	o.status = newStatus
	o.reason = reason
	o.comments = strings.TrimSpace(comments)
	o.record(CancelledEvent{
		OrderID:       o.id,
		ID:            o.id.String(),
		RefundAmount:  o.TotalAmount().Int64(),
		TransactionID: o.payment.TransactionID,
		Reason:        o.reason,
		Comments:      o.comments,
		At:            at.UTC(),
	})
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(o.events)
}

// ClearDomainEvents drops recorded events once they were stored.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) eventLines() []EventLine {
	lines := make([]EventLine, 0, len(o.lines))
	for _, l := range o.lines {
		lines = append(lines, EventLine{
			ProductID: l.ProductID().String(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Int64(),
		})
	}
	return lines
}

func (o *Order) titleOf(id kernel.UUID) string {
	for _, l := range o.lines {
		if l.ProductID().IsEqual(id) {
			return l.Title()
		}
	}
	return ""
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []cart.Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}

func (o *Order) setFees(fees FeeBreakdown) error {
	if err := fees.Validate(); err != nil {
		return err
	}
	o.fees = fees
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
