package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product", func(t *testing.T) {
		p, err := order.NewProduct("SKU-1", "Notebook", "15 inch notebook", decimal.NewFromInt(1000), 2)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "SKU-1", p.SKU())
		assert.Equal(t, "Notebook", p.Name())
		assert.Equal(t, "15 inch notebook", p.Description())
		assert.True(t, p.Price().Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, 2, p.Quantity())
	})

	t.Run("should fail with blank sku", func(t *testing.T) {
		_, err := order.NewProduct("  ", "Notebook", "15 inch notebook", decimal.NewFromInt(1000), 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrProductSkuEmpty)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := order.NewProduct("SKU-1", "", "15 inch notebook", decimal.NewFromInt(1000), 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrProductNameEmpty)
	})

	t.Run("should fail with blank description", func(t *testing.T) {
		_, err := order.NewProduct("SKU-1", "Notebook", "", decimal.NewFromInt(1000), 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrProductDescriptionEmpty)
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		_, err := order.NewProduct("SKU-1", "Notebook", "15 inch notebook", decimal.Zero, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrProductPriceNotPositive)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewProduct("SKU-1", "Notebook", "15 inch notebook", decimal.NewFromInt(-1), 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrProductPriceNotPositive)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewProduct("SKU-1", "Notebook", "15 inch notebook", decimal.NewFromInt(1000), 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrProductQuantityNotPositive)
	})
}

func TestProduct_Subtotal(t *testing.T) {
	t.Run("should multiply price by quantity", func(t *testing.T) {
		p, err := order.NewProduct("SKU-1", "Notebook", "15 inch notebook", decimal.NewFromInt(1000), 2)

		require.NoError(t, err)
		assert.True(t, p.Subtotal().Equal(decimal.NewFromInt(2000)))
	})

	t.Run("should keep decimal precision", func(t *testing.T) {
		price, err := decimal.NewFromString("19.99")
		require.NoError(t, err)

		p, err := order.NewProduct("SKU-1", "Cable", "USB cable", price, 3)
		require.NoError(t, err)

		want, err := decimal.NewFromString("59.97")
		require.NoError(t, err)
		assert.True(t, p.Subtotal().Equal(want))
	})
}
