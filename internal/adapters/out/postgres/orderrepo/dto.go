// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery snapshot, fee breakdown and payment receipt are embedded
// columns; lines live in their own table.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Status      int            `gorm:"type:smallint;not null;index"`
	Delivery    DeliveryDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	Fees        FeesDTO        `gorm:"embedded"`
	TotalAmount int64          `gorm:"type:bigint;not null"`
	Payment     PaymentDTO     `gorm:"embedded;embeddedPrefix:payment_"`
	Reason      string         `gorm:"type:text;not null;default:''"`
	Comments    string         `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	Lines       []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO is the embedded delivery form snapshot.
type DeliveryDTO struct {
	RecipientName            string     `gorm:"type:varchar(255);not null"`
	Email                    string     `gorm:"type:varchar(255);not null"`
	Phone                    string     `gorm:"type:varchar(32);not null"`
	Province                 string     `gorm:"type:varchar(128);not null"`
	Address                  string     `gorm:"type:text;not null"`
	IsRushDelivery           bool       `gorm:"not null;default:false"`
	RushDeliveryTime         *time.Time `gorm:"type:timestamptz"`
	RushDeliveryInstructions string     `gorm:"type:text;not null;default:''"`
}

// FeesDTO is the embedded fee breakdown.
type FeesDTO struct {
	Subtotal        int64 `gorm:"type:bigint;not null"`
	VAT             int64 `gorm:"column:vat;type:bigint;not null"`
	DeliveryFee     int64 `gorm:"type:bigint;not null"`
	RushDeliveryFee int64 `gorm:"type:bigint;not null"`
}

// PaymentDTO is the embedded payment receipt.
type PaymentDTO struct {
	Method              string    `gorm:"type:varchar(32);not null"`
	TransactionID       string    `gorm:"type:varchar(128);not null;index"`
	TransactionDatetime time.Time `gorm:"not null"`
}

// OrderLineDTO represents one snapshotted cart line of an order.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"type:int;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Category  string          `gorm:"type:varchar(8);not null"`
	Weight    decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice int64           `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: l.ProductID().Bytes(),
			Title:     l.Title(),
			Category:  l.Category().String(),
			Weight:    l.Weight().Kg(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Int64(),
		})
	}

	info := o.DeliveryInfo()
	var rushTime *time.Time
	if info.HasRushDeliveryTime() {
		t := info.RushDeliveryTime.UTC()
		rushTime = &t
	}

	fees := o.Fees()
	payment := o.Payment()

	return OrderDTO{
		ID:     orderID,
		Status: int(o.Status()),
		Delivery: DeliveryDTO{
			RecipientName:            info.RecipientName,
			Email:                    info.Email,
			Phone:                    info.Phone,
			Province:                 info.Province,
			Address:                  info.Address,
			IsRushDelivery:           info.IsRushDelivery,
			RushDeliveryTime:         rushTime,
			RushDeliveryInstructions: info.RushDeliveryInstructions,
		},
		Fees: FeesDTO{
			Subtotal:        fees.Subtotal.Int64(),
			VAT:             fees.VAT.Int64(),
			DeliveryFee:     fees.DeliveryFee.Int64(),
			RushDeliveryFee: fees.RushDeliveryFee.Int64(),
		},
		TotalAmount: o.TotalAmount().Int64(),
		Payment: PaymentDTO{
			Method:              string(payment.Method),
			TransactionID:       payment.TransactionID,
			TransactionDatetime: payment.TransactionDatetime.UTC(),
		},
		Reason:    o.Reason(),
		Comments:  o.Comments(),
		CreatedAt: o.CreatedAt().UTC(),
		Lines:     lines,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	info := delivery.Info{
		RecipientName:            dto.Delivery.RecipientName,
		Email:                    dto.Delivery.Email,
		Phone:                    dto.Delivery.Phone,
		Province:                 dto.Delivery.Province,
		Address:                  dto.Delivery.Address,
		IsRushDelivery:           dto.Delivery.IsRushDelivery,
		RushDeliveryInstructions: dto.Delivery.RushDeliveryInstructions,
	}
	if dto.Delivery.RushDeliveryTime != nil {
		info.RushDeliveryTime = *dto.Delivery.RushDeliveryTime
	}

	fees := order.FeeBreakdown{
		Subtotal:        kernel.Money(dto.Fees.Subtotal),
		VAT:             kernel.Money(dto.Fees.VAT),
		DeliveryFee:     kernel.Money(dto.Fees.DeliveryFee),
		RushDeliveryFee: kernel.Money(dto.Fees.RushDeliveryFee),
	}

	payment := order.Payment{
		Method:              order.PaymentMethod(dto.Payment.Method),
		TransactionID:       dto.Payment.TransactionID,
		TransactionDatetime: dto.Payment.TransactionDatetime,
	}

	return order.RestoreOrder(
		id,
		lines,
		info,
		fees,
		payment,
		order.Status(dto.Status),
		dto.Reason,
		dto.Comments,
		dto.CreatedAt,
	)
}

// lineToDomain converts an order line DTO using RestoreLine.
func lineToDomain(dto OrderLineDTO) (cart.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return cart.Line{}, err
	}

	category, err := catalog.ParseCategory(dto.Category)
	if err != nil {
		return cart.Line{}, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return cart.Line{}, err
	}

	return cart.RestoreLine(productID, dto.Title, category, weight, dto.Quantity, kernel.Money(dto.UnitPrice))
}
