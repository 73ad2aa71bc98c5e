package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbites/ordering/internal/models"
)

func menuItem(t *testing.T, id int64, name string, price float64) *models.MenuItem {
	t.Helper()

	item, err := models.NewMenuItem(id, 1, name, price, "", true)
	require.NoError(t, err)

	return item
}

func percentageCoupon(t *testing.T, value float64) *models.Coupon {
	t.Helper()

	coupon, err := models.NewCoupon(1, "SAVE", models.CouponTypePercentage, value, time.Now().AddDate(0, 1, 0), true)
	require.NoError(t, err)

	return coupon
}

func fixedCoupon(t *testing.T, value float64) *models.Coupon {
	t.Helper()

	coupon, err := models.NewCoupon(2, "FLAT", models.CouponTypeFixed, value, time.Now().AddDate(0, 1, 0), true)
	require.NoError(t, err)

	return coupon
}

func TestCartAddItem(t *testing.T) {

	t.Run("Success - New Line Snapshots Name And Price", func(t *testing.T) {
		// Arrange
		cart := models.NewCart()

		// Act
		err := cart.AddItem(menuItem(t, 5, "Margherita", 9.99), 2)

		// Assert
		require.NoError(t, err)
		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(5), items[0].ItemID)
		assert.Equal(t, "Margherita", items[0].Name)
		assert.InDelta(t, 9.99, items[0].UnitPrice, 1e-9)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Success - Same Item Merges Quantities", func(t *testing.T) {
		// Arrange
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 5, "Margherita", 9.99), 2))

		// Act
		err := cart.AddItem(menuItem(t, 5, "Margherita", 9.99), 3)

		// Assert
		require.NoError(t, err)
		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("Success - Insertion Order Preserved", func(t *testing.T) {
		// Arrange
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 3, "Cola", 1.50), 1))
		require.NoError(t, cart.AddItem(menuItem(t, 1, "Fries", 2.50), 1))
		require.NoError(t, cart.AddItem(menuItem(t, 2, "Burger", 8.00), 1))

		// Act
		items := cart.Items()

		// Assert
		require.Len(t, items, 3)
		assert.Equal(t, int64(3), items[0].ItemID)
		assert.Equal(t, int64(1), items[1].ItemID)
		assert.Equal(t, int64(2), items[2].ItemID)
	})

	t.Run("Failure - Invalid Inputs", func(t *testing.T) {
		cart := models.NewCart()

		assert.Error(t, cart.AddItem(nil, 1))
		assert.Error(t, cart.AddItem(menuItem(t, 5, "Margherita", 9.99), 0))
		assert.Error(t, cart.AddItem(menuItem(t, 5, "Margherita", 9.99), -2))
		assert.Error(t, cart.AddItem(&models.MenuItem{ItemID: 0, Name: "Ghost", Price: 1}, 1))
		assert.Error(t, cart.AddItem(&models.MenuItem{ItemID: 7, Name: "Bad", Price: -1}, 1))
	})
}

func TestCartRemoveItem(t *testing.T) {
	// Arrange
	cart := models.NewCart()
	require.NoError(t, cart.AddItem(menuItem(t, 5, "Margherita", 9.99), 2))

	// Act & Assert
	assert.True(t, cart.RemoveItem(5))
	assert.False(t, cart.RemoveItem(5), "removing an absent item reports false")
	assert.True(t, cart.IsEmpty())
}

func TestCartUpdateQuantity(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 5, "Margherita", 9.99), 2))

		require.NoError(t, cart.UpdateQuantity(5, 7))
		assert.Equal(t, 7, cart.Items()[0].Quantity)
	})

	t.Run("Failure - Zero Quantity", func(t *testing.T) {
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 5, "Margherita", 9.99), 2))

		assert.Error(t, cart.UpdateQuantity(5, 0))
	})

	t.Run("Failure - Item Not In Cart", func(t *testing.T) {
		cart := models.NewCart()

		assert.Error(t, cart.UpdateQuantity(42, 3))
	})
}

func TestCartCalculateTotal(t *testing.T) {

	t.Run("Sums Rounded Line Subtotals", func(t *testing.T) {
		// Arrange
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 1, "Margherita", 9.99), 2))
		require.NoError(t, cart.AddItem(menuItem(t, 2, "Cola", 1.50), 3))

		// Act & Assert
		assert.InDelta(t, 24.48, cart.CalculateTotal(), 1e-9)
	})

	t.Run("Empty Cart Totals Zero", func(t *testing.T) {
		cart := models.NewCart()

		assert.InDelta(t, 0, cart.CalculateTotal(), 1e-9)
	})

	t.Run("Percentage Coupon", func(t *testing.T) {
		// Arrange
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 1, "Feast", 30.00), 1))
		cart.ApplyCoupon(percentageCoupon(t, 10))

		// Act & Assert
		assert.InDelta(t, 27.00, cart.CalculateTotal(), 1e-9)
	})

	t.Run("Replacing Coupon Never Accumulates", func(t *testing.T) {
		// Arrange
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 1, "Feast", 30.00), 1))
		cart.ApplyCoupon(percentageCoupon(t, 10))

		// Act
		cart.ApplyCoupon(fixedCoupon(t, 5.00))

		// Assert
		assert.InDelta(t, 25.00, cart.CalculateTotal(), 1e-9)
	})

	t.Run("Fixed Coupon Larger Than Subtotal Clamps At Zero", func(t *testing.T) {
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 1, "Cola", 1.50), 1))
		cart.ApplyCoupon(fixedCoupon(t, 100))

		assert.InDelta(t, 0, cart.CalculateTotal(), 1e-9)
	})

	t.Run("Invalid Coupon Contributes Nothing", func(t *testing.T) {
		// Arrange
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 1, "Feast", 30.00), 1))

		expired, err := models.NewCoupon(3, "OLD", models.CouponTypePercentage, 50, time.Now().AddDate(0, 0, -1), true)
		require.NoError(t, err)

		// Act
		cart.ApplyCoupon(expired)

		// Assert
		assert.InDelta(t, 30.00, cart.CalculateTotal(), 1e-9)
	})

	t.Run("Nil Coupon Removes Discount", func(t *testing.T) {
		cart := models.NewCart()
		require.NoError(t, cart.AddItem(menuItem(t, 1, "Feast", 30.00), 1))
		cart.ApplyCoupon(percentageCoupon(t, 10))
		cart.ApplyCoupon(nil)

		assert.InDelta(t, 30.00, cart.CalculateTotal(), 1e-9)
	})
}

func TestCartClear(t *testing.T) {
	// Arrange
	cart := models.NewCart()
	require.NoError(t, cart.AddItem(menuItem(t, 1, "Margherita", 9.99), 2))
	cart.ApplyCoupon(percentageCoupon(t, 10))

	// Act
	cart.Clear()

	// Assert
	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.AppliedCoupon())
	assert.InDelta(t, 0, cart.CalculateTotal(), 1e-9)
}

func TestCartItemSubtotal(t *testing.T) {
	item, err := models.NewCartItem(1, "Margherita", 9.99, 2)
	require.NoError(t, err)

	assert.InDelta(t, 19.98, item.Subtotal(), 1e-9)
}
