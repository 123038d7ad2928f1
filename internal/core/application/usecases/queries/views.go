package queries

import (
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
)

// FeeView is a fee breakdown with its total.
type FeeView struct {
	Subtotal        kernel.Money
	VAT             kernel.Money
	DeliveryFee     kernel.Money
	RushDeliveryFee kernel.Money
	Total           kernel.Money
}

func feeViewOf(fees order.FeeBreakdown) FeeView {
	return FeeView{
		Subtotal:        fees.Subtotal,
		VAT:             fees.VAT,
		DeliveryFee:     fees.DeliveryFee,
		RushDeliveryFee: fees.RushDeliveryFee,
		Total:           fees.Total(),
	}
}
