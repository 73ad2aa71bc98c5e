package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbites/ordering/internal/models"
)

func TestNewOrder(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		couponID := int64(3)

		order, err := models.NewOrder(10, 20, 24.48, "  pending ", &couponID)

		require.NoError(t, err)
		assert.Equal(t, int64(0), order.OrderID, "order id stays zero until persisted")
		assert.Equal(t, int64(10), order.CustomerID)
		assert.Equal(t, int64(20), order.RestaurantID)
		assert.Equal(t, "pending", order.Status, "status is trimmed")
		require.NotNil(t, order.CouponID)
		assert.Equal(t, int64(3), *order.CouponID)
	})

	t.Run("Failure - Negative Total", func(t *testing.T) {
		_, err := models.NewOrder(10, 20, -0.01, "pending", nil)
		assert.Error(t, err)
	})

	t.Run("Failure - Empty Status", func(t *testing.T) {
		_, err := models.NewOrder(10, 20, 10, "   ", nil)
		assert.Error(t, err)
	})
}

func TestOrderSetStatus(t *testing.T) {
	order, err := models.NewOrder(10, 20, 10, models.OrderStatusPending, nil)
	require.NoError(t, err)

	// statuses are free-form, any non-empty string is accepted
	require.NoError(t, order.SetStatus("on the moon"))
	assert.Equal(t, "on the moon", order.Status)

	assert.Error(t, order.SetStatus(" "))
}

func TestNewOrderItem(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		item, err := models.NewOrderItem(0, 0, 5, 2, 9.99)

		require.NoError(t, err)
		assert.InDelta(t, 19.98, item.Subtotal(), 1e-9)
	})

	t.Run("Failure - Invalid Inputs", func(t *testing.T) {
		_, err := models.NewOrderItem(0, 0, 5, 0, 9.99)
		assert.Error(t, err)

		_, err = models.NewOrderItem(0, 0, 5, 1, -0.5)
		assert.Error(t, err)
	})
}

func TestOrderCalculateTotal(t *testing.T) {

	t.Run("Rounds Once After Summing", func(t *testing.T) {
		// Arrange
		order, err := models.NewOrder(10, 20, 0, models.OrderStatusPending, nil)
		require.NoError(t, err)

		order.AddItem(models.OrderItem{ItemID: 1, Quantity: 2, UnitPrice: 9.99})
		order.AddItem(models.OrderItem{ItemID: 2, Quantity: 3, UnitPrice: 1.50})

		// Act & Assert
		assert.InDelta(t, 24.48, order.CalculateTotal(), 1e-9)
	})

	t.Run("Independent Of Insertion Order", func(t *testing.T) {
		// Arrange
		forward, err := models.NewOrder(10, 20, 0, models.OrderStatusPending, nil)
		require.NoError(t, err)
		backward, err := models.NewOrder(10, 20, 0, models.OrderStatusPending, nil)
		require.NoError(t, err)

		items := []models.OrderItem{
			{ItemID: 1, Quantity: 3, UnitPrice: 0.335},
			{ItemID: 2, Quantity: 1, UnitPrice: 12.40},
			{ItemID: 3, Quantity: 7, UnitPrice: 2.05},
		}

		for _, item := range items {
			forward.AddItem(item)
		}

		for i := len(items) - 1; i >= 0; i-- {
			backward.AddItem(items[i])
		}

		// Act & Assert
		assert.InDelta(t, forward.CalculateTotal(), backward.CalculateTotal(), 1e-9)
	})

	t.Run("Diverges From Per-Line Rounding For Skewed Prices", func(t *testing.T) {
		// Three lines of 0.335 each: per-line rounding gives 3*0.34=1.02,
		// round-once gives round(1.005+... )  over the raw sum. The order
		// aggregate keeps the round-once behavior.
		order, err := models.NewOrder(10, 20, 0, models.OrderStatusPending, nil)
		require.NoError(t, err)

		for i := int64(1); i <= 3; i++ {
			order.AddItem(models.OrderItem{ItemID: i, Quantity: 1, UnitPrice: 0.335})
		}

		assert.InDelta(t, 1.01, order.CalculateTotal(), 1e-9)

		cart := models.NewCart()
		for i := int64(1); i <= 3; i++ {
			require.NoError(t, cart.AddItem(&models.MenuItem{ItemID: i, Name: "tiny", Price: 0.335, Available: true}, 1))
		}

		assert.InDelta(t, 1.02, cart.CalculateTotal(), 1e-9)
	})

	t.Run("Empty Order Totals Zero", func(t *testing.T) {
		order, err := models.NewOrder(10, 20, 0, models.OrderStatusPending, nil)
		require.NoError(t, err)

		assert.InDelta(t, 0, order.CalculateTotal(), 1e-9)
	})
}
