package models

type CheckoutItem struct {
	ItemID   int64 `json:"item_id"  validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

// PaymentDetails selects a payment method variant. Only the fields of the
// chosen method are read; the variant itself decides whether they are usable.
type PaymentDetails struct {
	Method     string `json:"method" validate:"required,oneof=cash credit_card debit_card"`
	Receiver   string `json:"receiver,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
	HolderName string `json:"holder_name,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

type CheckoutRequest struct {
	CustomerID   int64          `json:"customer_id"   validate:"required,gt=0"`
	RestaurantID int64          `json:"restaurant_id" validate:"required,gt=0"`
	Items        []CheckoutItem `json:"items"         validate:"required,min=1,dive"`
	CouponCode   string         `json:"coupon_code,omitempty"`
	Payment      PaymentDetails `json:"payment"       validate:"required"`
}

type CheckoutResponse struct {
	Order *Order `json:"order"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
