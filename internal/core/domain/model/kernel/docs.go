// Package kernel provides the shared value objects of the storefront domain.
//
// The package includes:
//   - UUID: identifiers for products, orders and outbox messages
//   - Money: whole-dong amounts with integer arithmetic and Vietnamese formatting
//   - Weight: decimal kilograms with exact fee-bracket arithmetic
//   - Province: delivery provinces compared through a folded, alias-aware key
//
// All values are immutable and safe for concurrent use.
package kernel
