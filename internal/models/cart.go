package models

import (
	"strings"

	"github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/pkg/money"
)

// CartItem is one priced line in a cart. Name and unit price are snapshotted
// from the menu at add time; only the quantity changes afterwards.
type CartItem struct {
	ItemID    int64   `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func NewCartItem(itemID int64, name string, unitPrice float64, quantity int) (*CartItem, error) {

	if itemID <= 0 {
		return nil, errors.ValidationError("Item id must be positive")
	}

	if strings.TrimSpace(name) == "" {
		return nil, errors.ValidationError("Item name cannot be empty")
	}

	if unitPrice < 0 {
		return nil, errors.ValidationError("Unit price cannot be negative")
	}

	if quantity <= 0 {
		return nil, errors.ValidationError("Quantity must be greater than 0")
	}

	return &CartItem{ItemID: itemID, Name: name, UnitPrice: unitPrice, Quantity: quantity}, nil
}

func (i *CartItem) SetQuantity(quantity int) error {

	if quantity <= 0 {
		return errors.ValidationError("Quantity must be greater than 0")
	}

	i.Quantity = quantity

	return nil
}

// Subtotal is the line total rounded to cents.
func (i *CartItem) Subtotal() float64 {
	return money.LineSubtotal(i.UnitPrice, i.Quantity)
}

// Cart collects priced lines pending checkout, keyed by item id with
// insertion order preserved, plus at most one applied coupon. Carts are not
// safe for concurrent use; each checkout builds its own.
type Cart struct {
	items         map[int64]*CartItem
	order         []int64
	appliedCoupon *Coupon
}

func NewCart() *Cart {
	return &Cart{items: make(map[int64]*CartItem)}
}

// AddItem adds quantity of a menu item. An item already in the cart gets its
// quantity increased; a new item is snapshotted with the menu name and price.
func (c *Cart) AddItem(item *MenuItem, quantity int) error {

	if item == nil {
		return errors.ValidationError("Item cannot be nil")
	}

	if quantity <= 0 {
		return errors.ValidationError("Quantity must be greater than 0")
	}

	if item.ItemID <= 0 {
		return errors.ValidationError("Item id must be positive")
	}

	if item.Price < 0 {
		return errors.ValidationError("Item price cannot be negative")
	}

	if existing, ok := c.items[item.ItemID]; ok {
		return existing.SetQuantity(existing.Quantity + quantity)
	}

	line, err := NewCartItem(item.ItemID, item.Name, item.Price, quantity)
	if err != nil {
		return err
	}

	c.items[item.ItemID] = line
	c.order = append(c.order, item.ItemID)

	return nil
}

// RemoveItem deletes the line for itemID and reports whether it was present.
func (c *Cart) RemoveItem(itemID int64) bool {

	if _, ok := c.items[itemID]; !ok {
		return false
	}

	delete(c.items, itemID)

	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return true
}

func (c *Cart) UpdateQuantity(itemID int64, newQuantity int) error {

	if newQuantity <= 0 {
		return errors.ValidationError("Quantity must be greater than 0")
	}

	existing, ok := c.items[itemID]
	if !ok {
		return errors.NotFoundError("Item not in cart")
	}

	return existing.SetQuantity(newQuantity)
}

// ApplyCoupon replaces any previously applied coupon. Passing nil removes the
// coupon. Validity is only checked when the total is computed.
func (c *Cart) ApplyCoupon(coupon *Coupon) {
	c.appliedCoupon = coupon
}

func (c *Cart) AppliedCoupon() *Coupon {
	return c.appliedCoupon
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {

	items := make([]CartItem, 0, len(c.order))

	for _, id := range c.order {
		items = append(items, *c.items[id])
	}

	return items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// CalculateTotal sums the already-rounded line subtotals, subtracts the coupon
// discount (zero when no coupon is applied or it is invalid), clamps at zero
// and rounds the result to cents. Note the per-line rounding: the order
// aggregate rounds once over raw products instead, and the two can differ by a
// cent for skewed unit prices.
func (c *Cart) CalculateTotal() float64 {

	var subtotal float64

	for _, id := range c.order {
		subtotal += c.items[id].Subtotal()
	}

	var discount float64
	if c.appliedCoupon != nil {
		discount = c.appliedCoupon.ComputeDiscount(subtotal)
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	return money.Round2(total)
}

// Clear empties all lines and drops the applied coupon.
func (c *Cart) Clear() {
	c.items = make(map[int64]*CartItem)
	c.order = nil
	c.appliedCoupon = nil
}
