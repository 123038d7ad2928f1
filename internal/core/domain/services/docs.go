// Package services holds the checkout rules that span several model types.
//
// The package includes:
//   - DeliveryPolicy: every tariff and rush delivery constant in one place
//   - FeeCalculator: subtotal, VAT, standard and rush delivery fees
//   - DeliveryValidator: field level validation of the delivery form
//   - OrderAssembler: charges the shopper and builds the placed order
//
// All services are stateless values; the policy, clock and payment gateway
// are passed in explicitly.
package services
