package queries

import (
	"errors"
	"time"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
	"aims/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its lines for the order detail page.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID        kernel.UUID
	Status    order.Status
	Lines     []OrderLineView
	Delivery  delivery.Info
	Fees      FeeView
	Payment   order.Payment
	Reason    string
	Comments  string
	CreatedAt time.Time
}

// OrderLineView is one snapshotted line of an order.
type OrderLineView struct {
	ProductID kernel.UUID
	Title     string
	Category  catalog.Category
	Weight    kernel.Weight
	Quantity  int
	UnitPrice kernel.Money
	Amount    kernel.Money
}
