package queries

import (
	"context"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries with plain SQL.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns matching orders sorted by creation time, newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := query.Statuses()
	filter := make([]int64, 0, len(statuses))
	for _, s := range statuses {
		filter = append(filter, int64(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_recipient_name,
			delivery_email,
			delivery_province,
			delivery_is_rush_delivery,
			total_amount,
			payment_method,
			created_at
		FROM orders
		WHERE cardinality(?::int[]) = 0 OR status = ANY(?::int[])
		ORDER BY created_at DESC, id
	`, pq.Array(filter), pq.Array(filter)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			item          ListOrdersQueryResponse
			id            uuid.UUID
			status        int
			total         int64
			paymentMethod string
		)

		err = rows.Scan(
			&id,
			&status,
			&item.RecipientName,
			&item.Email,
			&item.Province,
			&item.IsRushDelivery,
			&total,
			&paymentMethod,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = orderID
		item.Status = order.Status(status)
		item.TotalAmount = kernel.Money(total)
		item.PaymentMethod = order.PaymentMethod(paymentMethod)

		orders = append(orders, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
