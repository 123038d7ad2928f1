// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the catalog product aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog products.
// Money columns hold whole VND; weight is kept as an exact numeric so that
// delivery fee brackets read back exactly what was stored.
type ProductDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category        string          `gorm:"type:varchar(8);not null;index"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Price           int64           `gorm:"type:bigint;not null"`
	Value           int64           `gorm:"type:bigint;not null"`
	Weight          decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	Quantity        int             `gorm:"type:int;not null"`
	DiscountPercent int             `gorm:"type:smallint;not null;default:0"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products" instead of "product_dtos".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(product *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:              product.ID().Bytes(),
		Category:        product.Category().String(),
		Title:           product.Title(),
		Price:           product.Price().Int64(),
		Value:           product.Value().Int64(),
		Weight:          product.Weight().Kg(),
		Quantity:        product.Quantity(),
		DiscountPercent: product.DiscountPercent(),
	}
}

// toDomain converts a database DTO to a product aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := catalog.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(
		id,
		category,
		dto.Title,
		kernel.Money(dto.Price),
		kernel.Money(dto.Value),
		weight,
		dto.Quantity,
		dto.DiscountPercent,
	)
}

func toDomainAll(dtos []ProductDTO) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
