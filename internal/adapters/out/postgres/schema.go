package postgres

import (
	"aims/internal/adapters/out/postgres/orderrepo"
	"aims/internal/adapters/out/postgres/outboxrepo"
	"aims/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the adapters use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&outboxrepo.MessageDTO{},
	)
}
