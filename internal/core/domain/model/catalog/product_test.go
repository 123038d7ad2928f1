package catalog_test

import (
	"testing"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(t *testing.T, price, value kernel.Money, discount int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), catalog.Book, "Norwegian Wood", price, value,
		kernel.MustWeight("0.5"), 10, discount)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := catalog.NewProduct(id, catalog.LP, "Kind of Blue", 220000, 200000, kernel.MustWeight("0.3"), 4, 10)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, catalog.LP, p.Category())
		assert.Equal(t, "Kind of Blue", p.Title())
		assert.Equal(t, kernel.Money(220000), p.Price())
		assert.Equal(t, kernel.Money(200000), p.Value())
		assert.True(t, p.Weight().IsEqual(kernel.MustWeight("0.3")))
		assert.Equal(t, 4, p.Quantity())
		assert.Equal(t, 10, p.DiscountPercent())
	})

	t.Run("should accept price band boundaries", func(t *testing.T) {
		newBook(t, 30000, 100000, 0)
		newBook(t, 150000, 100000, 0)
	})

	t.Run("should reject price outside 30..150 percent of value", func(t *testing.T) {
		for _, price := range []kernel.Money{29999, 150001} {
			_, err := catalog.NewProduct(kernel.NewUUID(), catalog.CD, "Abbey Road", price, 100000,
				kernel.MustWeight("0.1"), 1, 0)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "price")
		}
	})

	t.Run("should report all violations together", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.UUID{}, catalog.Category("VHS"), "", 1, 0, kernel.Weight{}, -1, 101)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, catalog.ErrTitleIsRequired)
		assert.Contains(t, err.Error(), "category")
		assert.Contains(t, err.Error(), "value")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "discount percent")
	})
}

func TestRestoreProduct_SkipsPriceBand(t *testing.T) {
	p, err := catalog.RestoreProduct(kernel.NewUUID(), catalog.DVD, "Spirited Away", 10, 100000,
		kernel.MustWeight("0.2"), 1, 0)

	require.NoError(t, err)
	assert.Equal(t, kernel.Money(10), p.Price())
}

func TestProduct_Validate(t *testing.T) {
	var zero catalog.Product
	var nilProduct *catalog.Product

	assert.Equal(t, catalog.ErrProductIsNotConstructed, zero.Validate())
	assert.Equal(t, catalog.ErrProductIsNotConstructed, nilProduct.Validate())
}

func TestProduct_SalePrice(t *testing.T) {
	assert.Equal(t, kernel.Money(180000), newBook(t, 180000, 150000, 0).SalePrice())
	assert.Equal(t, kernel.Money(162000), newBook(t, 180000, 150000, 10).SalePrice())
	assert.Equal(t, kernel.Money(0), newBook(t, 180000, 150000, 100).SalePrice())
	assert.Equal(t, kernel.Money(66999), newBook(t, 99999, 99999, 33).SalePrice())
}

func TestProduct_ChangePrice(t *testing.T) {
	p := newBook(t, 180000, 150000, 0)

	t.Run("should keep old price on violation", func(t *testing.T) {
		err := p.ChangePrice(300000, 150000)

		require.Error(t, err)
		assert.Equal(t, kernel.Money(180000), p.Price())
	})

	t.Run("should update price and value", func(t *testing.T) {
		require.NoError(t, p.ChangePrice(200000, 160000))
		assert.Equal(t, kernel.Money(200000), p.Price())
		assert.Equal(t, kernel.Money(160000), p.Value())
	})
}

func TestProduct_Stock(t *testing.T) {
	p := newBook(t, 180000, 150000, 0)

	require.NoError(t, p.Withdraw(4))
	assert.Equal(t, 6, p.Quantity())

	err := p.Withdraw(7)
	require.ErrorIs(t, err, catalog.ErrNotEnoughStock)
	assert.Equal(t, 6, p.Quantity())

	require.Error(t, p.Withdraw(0))
	require.Error(t, p.Restock(-1))

	require.NoError(t, p.Restock(5))
	assert.Equal(t, 11, p.Quantity())
}

func TestParseCategory(t *testing.T) {
	c, err := catalog.ParseCategory(" book ")
	require.NoError(t, err)
	assert.Equal(t, catalog.Book, c)

	_, err = catalog.ParseCategory("cassette")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
