package queries

import (
	"context"
	"database/sql"
	"errors"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
	"aims/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order straight from the orders and
// order_lines tables.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id := query.OrderID()
	resp := GetOrderQueryResponse{ID: id}

	var (
		status         int
		rushTime       sql.NullTime
		subtotal       int64
		vat            int64
		deliveryFee    int64
		rushFee        int64
		paymentMethod  string
		paymentTxnID   string
		paymentTxnTime sql.NullTime
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			delivery_recipient_name,
			delivery_email,
			delivery_phone,
			delivery_province,
			delivery_address,
			delivery_is_rush_delivery,
			delivery_rush_delivery_time,
			delivery_rush_delivery_instructions,
			subtotal,
			vat,
			delivery_fee,
			rush_delivery_fee,
			payment_method,
			payment_transaction_id,
			payment_transaction_datetime,
			reason,
			comments,
			created_at
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Row().Scan(
		&status,
		&resp.Delivery.RecipientName,
		&resp.Delivery.Email,
		&resp.Delivery.Phone,
		&resp.Delivery.Province,
		&resp.Delivery.Address,
		&resp.Delivery.IsRushDelivery,
		&rushTime,
		&resp.Delivery.RushDeliveryInstructions,
		&subtotal,
		&vat,
		&deliveryFee,
		&rushFee,
		&paymentMethod,
		&paymentTxnID,
		&paymentTxnTime,
		&resp.Reason,
		&resp.Comments,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", id.String(), err)
		}
		return nil, err
	}

	resp.Status = order.Status(status)
	if rushTime.Valid {
		resp.Delivery.RushDeliveryTime = rushTime.Time
	}
	resp.Fees = feeViewOf(order.FeeBreakdown{
		Subtotal:        kernel.Money(subtotal),
		VAT:             kernel.Money(vat),
		DeliveryFee:     kernel.Money(deliveryFee),
		RushDeliveryFee: kernel.Money(rushFee),
	})
	resp.Payment = order.Payment{
		Method:              order.PaymentMethod(paymentMethod),
		TransactionID:       paymentTxnID,
		TransactionDatetime: paymentTxnTime.Time,
	}

	lines, err := h.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Lines = lines

	return &resp, nil
}

func (h GetOrderQueryHandler) lines(ctx context.Context, orderID kernel.UUID) ([]OrderLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			title,
			category,
			weight,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			line      OrderLineView
			productID uuid.UUID
			category  string
			weight    decimal.Decimal
			unitPrice int64
		)

		if err = rows.Scan(&productID, &line.Title, &category, &weight, &line.Quantity, &unitPrice); err != nil {
			return nil, err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		line.Category = catalog.Category(category)
		if line.Weight, err = kernel.NewWeight(weight); err != nil {
			return nil, err
		}
		line.UnitPrice = kernel.Money(unitPrice)
		line.Amount = line.UnitPrice.Times(line.Quantity)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
