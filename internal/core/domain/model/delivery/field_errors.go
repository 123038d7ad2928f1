package delivery

import (
	"errors"
	"slices"
	"strings"
)

// ErrDeliveryInfoIsInvalid is matched by errors.Is for any FieldErrors value.
var ErrDeliveryInfoIsInvalid = errors.New("delivery info is invalid")

// Field names a delivery form field. Values match the JSON field names the
// HTTP API uses, so the map can be rendered as is.
type Field string

const (
	FieldRecipientName    Field = "recipientName"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldProvince         Field = "province"
	FieldAddress          Field = "address"
	FieldRushDeliveryTime Field = "rushDeliveryTime"
)

// FieldErrors maps each invalid field to a message. An empty map means valid.
type FieldErrors map[Field]string

// Add records a message for a field, keeping the first message if one exists.
func (e FieldErrors) Add(field Field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// IsEmpty reports whether no field is invalid.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// Err returns e as an error, or nil when there is nothing to report.
func (e FieldErrors) Err() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

// Error lists the fields in a stable order.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, string(f))
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[Field(f)])
	}
	return ErrDeliveryInfoIsInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrDeliveryInfoIsInvalid
}
