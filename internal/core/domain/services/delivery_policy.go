package services

import (
	"errors"
	"fmt"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DeliveryPolicy holds every constant of the pricing and rush delivery rules.
// It is the single source of truth for fee calculation and delivery validation.
type DeliveryPolicy struct {
	// VATRate is applied to the subtotal, e.g. 0.10.
	VATRate decimal.Decimal

	// FreeShippingThreshold zeroes the standard fee when subtotal >= threshold.
	FreeShippingThreshold kernel.Money
	// CapThreshold and FeeCap limit the standard fee to FeeCap when subtotal > CapThreshold.
	CapThreshold kernel.Money
	FeeCap       kernel.Money

	// MetroProvinces get the metro tariff; every other province gets the regional one.
	MetroProvinces     []kernel.Province
	MetroBaseFee       kernel.Money
	MetroBaseWeight    kernel.Weight
	RegionalBaseFee    kernel.Money
	RegionalBaseWeight kernel.Weight
	// StepFee is charged for each started WeightStep above the base weight.
	WeightStep kernel.Weight
	StepFee    kernel.Money

	// RushProvinces may use rush delivery.
	RushProvinces []kernel.Province
	// RushFeePerLine is charged once per line lighter than RushMaxWeight.
	RushFeePerLine kernel.Money
	RushMaxWeight  kernel.Weight
	// RushLeadTime is the minimum gap between now and the requested slot.
	RushLeadTime time.Duration
	// BusinessHoursStart and BusinessHoursEnd bound the slot hour: start <= hour < end.
	BusinessHoursStart int
	BusinessHoursEnd   int
}

// DefaultDeliveryPolicy returns the storefront's standard tariff.
func DefaultDeliveryPolicy() DeliveryPolicy {
	return DeliveryPolicy{
		VATRate:               decimal.New(10, -2),
		FreeShippingThreshold: 100_000,
		CapThreshold:          100_000,
		FeeCap:                25_000,
		MetroProvinces:        []kernel.Province{kernel.Hanoi, kernel.HoChiMinhCity},
		MetroBaseFee:          22_000,
		MetroBaseWeight:       kernel.MustWeight("3"),
		RegionalBaseFee:       30_000,
		RegionalBaseWeight:    kernel.MustWeight("0.5"),
		WeightStep:            kernel.MustWeight("0.5"),
		StepFee:               2_500,
		RushProvinces:         []kernel.Province{kernel.Hanoi},
		RushFeePerLine:        10_000,
		RushMaxWeight:         kernel.MustWeight("3"),
		RushLeadTime:          2 * time.Hour,
		BusinessHoursStart:    8,
		BusinessHoursEnd:      20,
	}
}

// Validate rejects policies that would make the rules meaningless.
func (p DeliveryPolicy) Validate() error {
	var result []error
	nonNegative := func(name string, m kernel.Money) {
		if m < 0 {
			result = append(result, errs.NewValueIsOutOfRangeError(name, m.Int64(), 0, "unbounded"))
		}
	}

	if p.VATRate.IsNegative() || p.VATRate.GreaterThan(decimal.NewFromInt(1)) {
		result = append(result, errs.NewValueIsOutOfRangeError("vat rate", p.VATRate.String(), 0, 1))
	}
	nonNegative("free shipping threshold", p.FreeShippingThreshold)
	nonNegative("cap threshold", p.CapThreshold)
	nonNegative("fee cap", p.FeeCap)
	nonNegative("metro base fee", p.MetroBaseFee)
	nonNegative("regional base fee", p.RegionalBaseFee)
	nonNegative("step fee", p.StepFee)
	nonNegative("rush fee per line", p.RushFeePerLine)

	if !p.WeightStep.GreaterThan(kernel.Weight{}) {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("weight step", fmt.Errorf("%s is not greater than 0", p.WeightStep)))
	}
	if p.RushLeadTime < 0 {
		result = append(result, errs.NewValueIsOutOfRangeError("rush lead time", p.RushLeadTime.String(), 0, "unbounded"))
	}
	if p.BusinessHoursStart < 0 || p.BusinessHoursEnd > 24 || p.BusinessHoursStart >= p.BusinessHoursEnd {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("business hours",
			fmt.Errorf("[%d, %d) is not a valid hour range", p.BusinessHoursStart, p.BusinessHoursEnd)))
	}

	return errors.Join(result...)
}

// IsMetro reports whether the province gets the metro tariff.
func (p DeliveryPolicy) IsMetro(province kernel.Province) bool {
	return province.In(p.MetroProvinces)
}

// IsRushProvince reports whether rush delivery is offered in the province.
func (p DeliveryPolicy) IsRushProvince(province kernel.Province) bool {
	return province.In(p.RushProvinces)
}
