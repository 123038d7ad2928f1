// Package cart holds the shopper's working set of lines before checkout.
//
// A Line freezes the product's sale price at the moment it is added, so later
// catalog price edits never change what the shopper was quoted.
package cart
