package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 11
)

// DeliveryValidator checks a delivery form and reports every invalid field at once.
//
// Business rules:
//   - recipient name, email, phone, province and address are required
//   - email must look like name@host.tld
//   - phone must have 10 or 11 digits once separators are stripped
//   - when rush delivery is requested a slot is required, at least the rush
//     lead time away and inside business hours (hour of day only)
//
// Whether rush delivery may be requested at all is not re-checked here; that
// is CanUseRushDelivery's answer for the form. The validator is pure: the
// clock and time zone are injected.
type DeliveryValidator struct {
	policy   DeliveryPolicy
	location *time.Location
	now      func() time.Time
}

// NewDeliveryValidator creates a validator. Business hours are evaluated in
// location; a nil location means UTC and a nil clock means time.Now.
func NewDeliveryValidator(policy DeliveryPolicy, location *time.Location, now func() time.Time) DeliveryValidator {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return DeliveryValidator{policy: policy, location: location, now: now}
}

// Validate returns the field errors of info. An empty map means valid.
// The cart lines are accepted for symmetry with CanUseRushDelivery and do
// not change the outcome.
func (v DeliveryValidator) Validate(info delivery.Info, _ []cart.Line) delivery.FieldErrors {
	result := delivery.FieldErrors{}

	if isBlank(info.RecipientName) {
		result.Add(delivery.FieldRecipientName, "Recipient name is required")
	}

	switch {
	case isBlank(info.Email):
		result.Add(delivery.FieldEmail, "Email is required")
	case !emailPattern.MatchString(info.Email):
		result.Add(delivery.FieldEmail, "Email is invalid")
	}

	switch digits := countDigits(info.Phone); {
	case isBlank(info.Phone):
		result.Add(delivery.FieldPhone, "Phone is required")
	case digits < minPhoneDigits || digits > maxPhoneDigits:
		result.Add(delivery.FieldPhone, "Phone must have 10-11 digits")
	}

	if _, err := kernel.NewProvince(info.Province); err != nil {
		result.Add(delivery.FieldProvince, "Province is required")
	}

	if isBlank(info.Address) {
		result.Add(delivery.FieldAddress, "Address is required")
	}

	if info.IsRushDelivery {
		if msg := v.checkRushDeliveryTime(info.RushDeliveryTime); msg != "" {
			result.Add(delivery.FieldRushDeliveryTime, msg)
		}
	}

	return result
}

func (v DeliveryValidator) checkRushDeliveryTime(slot time.Time) string {
	if slot.IsZero() {
		return "Rush delivery time is required"
	}

	earliest := v.now().Add(v.policy.RushLeadTime)
	if slot.Before(earliest) {
		return fmt.Sprintf("Rush delivery time must be at least %g hours from now", v.policy.RushLeadTime.Hours())
	}

	hour := slot.In(v.location).Hour()
	if hour < v.policy.BusinessHoursStart || hour >= v.policy.BusinessHoursEnd {
		return fmt.Sprintf("Rush delivery time must be between %02d:00 and %02d:00",
			v.policy.BusinessHoursStart, v.policy.BusinessHoursEnd)
	}

	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
