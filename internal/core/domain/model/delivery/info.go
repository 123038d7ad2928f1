package delivery

import (
	"strings"
	"time"

	"aims/internal/core/domain/model/kernel"
)

// Info is the delivery form a shopper submits at checkout. It is a plain value:
// checks live in the delivery validator so that every problem can be reported
// at once instead of failing on the first one.
//
// Once an order is placed its Info is a frozen snapshot.
type Info struct {
	RecipientName string
	Email         string
	Phone         string
	Province      string
	Address       string

	IsRushDelivery bool
	// RushDeliveryTime is the requested slot. The zero time means unset.
	RushDeliveryTime time.Time
	// RushDeliveryInstructions is optional free text for the courier.
	RushDeliveryInstructions string
}

// ProvinceValue resolves the free-text province.
func (i Info) ProvinceValue() (kernel.Province, error) {
	return kernel.NewProvince(i.Province)
}

// HasRushDeliveryTime reports whether a rush slot was chosen.
func (i Info) HasRushDeliveryTime() bool {
	return !i.RushDeliveryTime.IsZero()
}

// Normalized trims surrounding whitespace from all text fields and drops
// rush details when rush delivery was not requested.
func (i Info) Normalized() Info {
	n := Info{
		RecipientName:  strings.TrimSpace(i.RecipientName),
		Email:          strings.TrimSpace(i.Email),
		Phone:          strings.TrimSpace(i.Phone),
		Province:       strings.TrimSpace(i.Province),
		Address:        strings.TrimSpace(i.Address),
		IsRushDelivery: i.IsRushDelivery,
	}
	if i.IsRushDelivery {
		n.RushDeliveryTime = i.RushDeliveryTime
		n.RushDeliveryInstructions = strings.TrimSpace(i.RushDeliveryInstructions)
	}
	return n
}
