package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/pkg/money"
)

// Observed order statuses. The status field is an open string; callers may set
// values outside this list and no transition is rejected here.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is the durable record of a completed cart. OrderID stays zero until
// the order is persisted, then is assigned exactly once by the repository.
type Order struct {
	OrderID      int64       `json:"order_id"`
	CustomerID   int64       `json:"customer_id"`
	RestaurantID int64       `json:"restaurant_id"`
	TotalPrice   float64     `json:"total_price"`
	Status       string      `json:"status"`
	CouponID     *int64      `json:"coupon_id,omitempty"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

func NewOrder(customerID, restaurantID int64, totalPrice float64, status string, couponID *int64) (*Order, error) {

	if totalPrice < 0 {
		return nil, errors.ValidationError("Total price cannot be negative")
	}

	if strings.TrimSpace(status) == "" {
		return nil, errors.ValidationError("Status cannot be empty")
	}

	return &Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		TotalPrice:   totalPrice,
		Status:       strings.TrimSpace(status),
		CouponID:     couponID,
	}, nil
}

func (o *Order) SetStatus(status string) error {

	if strings.TrimSpace(status) == "" {
		return errors.ValidationError("Status cannot be empty")
	}

	o.Status = strings.TrimSpace(status)

	return nil
}

func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
}

// CalculateTotal derives the total from the items, rounding once after
// summing quantity*unitPrice over all lines. This deliberately differs from
// Cart.CalculateTotal, which rounds each line first.
func (o *Order) CalculateTotal() float64 {

	total := decimal.Zero

	for _, item := range o.Items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}

	return total.Round(2).InexactFloat64()
}

// OrderItem is one persisted line of an order. UnitPrice is the price captured
// at cart time and is never re-read from the menu.
type OrderItem struct {
	OrderItemID int64   `json:"order_item_id"`
	OrderID     int64   `json:"order_id"`
	ItemID      int64   `json:"item_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func NewOrderItem(orderItemID, orderID, itemID int64, quantity int, unitPrice float64) (*OrderItem, error) {

	if quantity <= 0 {
		return nil, errors.ValidationError("Quantity must be greater than 0")
	}

	if unitPrice < 0 {
		return nil, errors.ValidationError("Unit price cannot be negative")
	}

	return &OrderItem{
		OrderItemID: orderItemID,
		OrderID:     orderID,
		ItemID:      itemID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

func (i *OrderItem) Subtotal() float64 {
	return money.LineSubtotal(i.UnitPrice, i.Quantity)
}
