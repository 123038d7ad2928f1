package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aims/internal/pkg/errs"
)

// PaymentMethod is how the shopper pays.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDomesticCard PaymentMethod = "DOMESTIC_CARD"
	PaymentMethodVNPay        PaymentMethod = "VNPAY"
)

// ParsePaymentMethod accepts the method names case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate rejects unknown methods.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDomesticCard, PaymentMethodVNPay:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", string(m)))
	}
}

// Payment is the receipt of a successful charge.
type Payment struct {
	Method              PaymentMethod
	TransactionID       string
	TransactionDatetime time.Time
}

// Validate checks that the receipt is complete.
func (p Payment) Validate() error {
	var txErr, timeErr error
	if strings.TrimSpace(p.TransactionID) == "" {
		txErr = errs.NewValueIsRequiredError("transaction id")
	}
	if p.TransactionDatetime.IsZero() {
		timeErr = errs.NewValueIsRequiredError("transaction datetime")
	}
	return errors.Join(p.Method.Validate(), txErr, timeErr)
}
