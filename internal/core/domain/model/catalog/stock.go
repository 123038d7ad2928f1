package catalog

import "aims/internal/core/domain/model/kernel"

// StockLevels is a point-in-time snapshot of units on hand per product.
// Products missing from the snapshot have no stock.
type StockLevels map[kernel.UUID]int

// StockLevelsOf snapshots the current quantity of each product.
func StockLevelsOf(products ...*Product) StockLevels {
	levels := make(StockLevels, len(products))
	for _, p := range products {
		levels[p.ID()] = p.Quantity()
	}
	return levels
}

// Available returns the units on hand for a product.
func (s StockLevels) Available(productID kernel.UUID) int {
	return s[productID]
}
