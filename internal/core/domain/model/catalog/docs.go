// Package catalog models the products the storefront sells: books, CDs, LPs and DVDs.
//
// Product enforces the catalog-edit rules (price band relative to value,
// non-negative stock and weight, discount percent bounds). Checkout reads
// products but never changes them; stock is withdrawn only when staff approve
// an order.
package catalog
