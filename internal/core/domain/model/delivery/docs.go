// Package delivery models the shopper's delivery details and the field-level
// errors reported against them.
package delivery
