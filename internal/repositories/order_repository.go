package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quickbites/ordering/internal/models"
	"github.com/quickbites/ordering/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder writes the order header and all its items as one transaction.
// On success the generated ids are assigned onto the aggregate; on any failure
// the transaction is rolled back and the aggregate is left untouched, so the
// caller can re-issue the same order (OrderID still zero). The caller-computed
// total is stored as-is and not recomputed from the item rows.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// No-op after a successful commit; otherwise reverts header and items
	// together so no partial order is ever visible.
	defer tx.Rollback()

	query := `
		INSERT INTO orders (customer_id, restaurant_id, total_price, status, coupon_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING order_id
	`

	var couponID sql.NullInt64
	if order.CouponID != nil {
		couponID = sql.NullInt64{Int64: *order.CouponID, Valid: true}
	}

	var orderID int64

	err = tx.QueryRowContext(dbCtx, query, order.CustomerID, order.RestaurantID, order.TotalPrice, order.Status, couponID).Scan(&orderID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemIDs := make([]int64, len(order.Items))

	if len(order.Items) > 0 {

		itemQuery := `
			INSERT INTO order_items (order_id, item_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING order_item_id
		`

		stmt, err := tx.PrepareContext(dbCtx, itemQuery)
		if err != nil {
			return fmt.Errorf("failed to prepare order item insert: %w", err)
		}

		defer stmt.Close()

		for i, item := range order.Items {
			if err := stmt.QueryRowContext(dbCtx, orderID, item.ItemID, item.Quantity, item.UnitPrice).Scan(&itemIDs[i]); err != nil {
				return fmt.Errorf("failed to insert an order item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	order.OrderID = orderID

	for i := range order.Items {
		order.Items[i].OrderID = orderID
		order.Items[i].OrderItemID = itemIDs[i]
	}

	return nil
}

// GetOrderByID loads the order header with its items. Returns sql.ErrNoRows
// when the order does not exist.
func (r *orderRepository) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{
		OrderID: orderID,
	}

	query := `
		SELECT customer_id, restaurant_id, total_price, status, coupon_id, created_at
		FROM orders
		WHERE order_id = $1
	`

	var couponID sql.NullInt64

	err := r.DB.QueryRowContext(dbCtx, query, orderID).
		Scan(&order.CustomerID, &order.RestaurantID, &order.TotalPrice, &order.Status, &couponID, &order.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	if couponID.Valid {
		order.CouponID = &couponID.Int64
	}

	query = `
		SELECT order_item_id, item_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY order_item_id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {

		var item models.OrderItem

		if err := rows.Scan(&item.OrderItemID, &item.ItemID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.OrderID = orderID

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	order.Items = items

	return order, nil
}

// ListOrdersByCustomer returns the customer's order headers, newest first.
// Items are not loaded for listings.
func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT order_id, restaurant_id, total_price, status, coupon_id, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {

		order := models.Order{CustomerID: customerID}

		var couponID sql.NullInt64

		if err := rows.Scan(&order.OrderID, &order.RestaurantID, &order.TotalPrice, &order.Status, &couponID, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan the orders: %w", err)
		}

		if couponID.Valid {
			order.CouponID = &couponID.Int64
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus sets the status string. No transition graph is enforced.
// Returns sql.ErrNoRows when the order does not exist.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET status = $1 WHERE order_id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
