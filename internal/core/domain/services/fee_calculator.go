package services

import (
	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
)

// FeeCalculator prices a cart: subtotal, VAT, standard delivery fee and rush fee.
//
// Business rules:
//   - subtotal is the sum of unit price × quantity over all lines
//   - VAT is a flat rate on the subtotal, rounded to whole dong
//   - the standard fee depends on the heaviest per-unit weight of any line,
//     not on the total weight
//   - a subtotal at or above the free shipping threshold zeroes the standard
//     fee outright; the cap is not consulted in that case
//   - otherwise a subtotal above the cap threshold limits the fee to the cap
//   - the rush fee is charged once per line (not per unit) lighter than the
//     rush weight limit, and only in a rush province
//
// Example usage:
//
//	calc := NewFeeCalculator(DefaultDeliveryPolicy())
//	fees := calc.ComputeFees(cart.Lines(), kernel.Hanoi, false)
//	fmt.Println(fees.Total().Format())
type FeeCalculator struct {
	policy DeliveryPolicy
}

// NewFeeCalculator creates a calculator for a policy.
func NewFeeCalculator(policy DeliveryPolicy) FeeCalculator {
	return FeeCalculator{policy: policy}
}

// Policy returns the policy the calculator applies.
func (c FeeCalculator) Policy() DeliveryPolicy {
	return c.policy
}

// ComputeFees derives the fee breakdown. An empty cart costs nothing.
func (c FeeCalculator) ComputeFees(lines []cart.Line, province kernel.Province, isRushDelivery bool) order.FeeBreakdown {
	if len(lines) == 0 {
		return order.FeeBreakdown{}
	}

	subtotal := Subtotal(lines)
	return order.FeeBreakdown{
		Subtotal:        subtotal,
		VAT:             subtotal.ApplyRate(c.policy.VATRate),
		DeliveryFee:     c.deliveryFee(subtotal, province, heaviest(lines)),
		RushDeliveryFee: c.rushDeliveryFee(lines, province, isRushDelivery),
	}
}

// CanUseRushDelivery reports whether rush delivery may be offered: the
// province is a rush province and at least one line is light enough.
func (c FeeCalculator) CanUseRushDelivery(lines []cart.Line, province kernel.Province) bool {
	return c.policy.IsRushProvince(province) && c.rushEligibleLines(lines) > 0
}

// Subtotal sums unit price × quantity.
func Subtotal(lines []cart.Line) kernel.Money {
	var subtotal kernel.Money
	for _, l := range lines {
		subtotal += l.Amount()
	}
	return subtotal
}

func (c FeeCalculator) deliveryFee(subtotal kernel.Money, province kernel.Province, weight kernel.Weight) kernel.Money {
	p := c.policy
	if subtotal >= p.FreeShippingThreshold {
		return 0
	}

	var fee kernel.Money
	if p.IsMetro(province) {
		fee = p.MetroBaseFee + p.StepFee.Times(int(weight.StepsAbove(p.MetroBaseWeight, p.WeightStep)))
	} else {
		fee = p.RegionalBaseFee + p.StepFee.Times(int(weight.StepsAbove(p.RegionalBaseWeight, p.WeightStep)))
	}

	if subtotal > p.CapThreshold {
		fee = fee.Min(p.FeeCap)
	}
	return fee
}

func (c FeeCalculator) rushDeliveryFee(lines []cart.Line, province kernel.Province, isRushDelivery bool) kernel.Money {
	if !isRushDelivery || !c.policy.IsRushProvince(province) {
		return 0
	}
	return c.policy.RushFeePerLine.Times(c.rushEligibleLines(lines))
}

func (c FeeCalculator) rushEligibleLines(lines []cart.Line) int {
	n := 0
	for _, l := range lines {
		if l.Weight().LessThan(c.policy.RushMaxWeight) {
			n++
		}
	}
	return n
}

func heaviest(lines []cart.Line) kernel.Weight {
	var w kernel.Weight
	for _, l := range lines {
		if l.Weight().GreaterThan(w) {
			w = l.Weight()
		}
	}
	return w
}
