package models

import (
	"strings"
	"time"

	"github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/pkg/money"
)

type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"
)

// Coupon is a discount rule with a validity window. Validity is never checked
// when the coupon is applied to a cart, only when a discount is computed.
type Coupon struct {
	CouponID       int64      `json:"coupon_id"`
	Code           string     `json:"code"`
	Type           CouponType `json:"type"`
	Value          float64    `json:"value"`
	ExpirationDate time.Time  `json:"expiration_date"`
	Active         bool       `json:"active"`
}

func NewCoupon(couponID int64, code string, couponType CouponType, value float64, expirationDate time.Time, active bool) (*Coupon, error) {

	if strings.TrimSpace(code) == "" {
		return nil, errors.ValidationError("Coupon code cannot be empty")
	}

	switch couponType {
	case CouponTypePercentage:
		if value <= 0 || value > 100 {
			return nil, errors.ValidationError("Percentage coupon value must be in (0, 100]")
		}
	case CouponTypeFixed:
		if value < 0 {
			return nil, errors.ValidationError("Fixed coupon value must be >= 0")
		}
	default:
		return nil, errors.ValidationError("Unknown coupon type")
	}

	if expirationDate.IsZero() {
		return nil, errors.ValidationError("Coupon expiration date must be set")
	}

	return &Coupon{
		CouponID:       couponID,
		Code:           strings.TrimSpace(code),
		Type:           couponType,
		Value:          value,
		ExpirationDate: expirationDate,
		Active:         active,
	}, nil
}

// IsValid reports whether the coupon may grant a discount today. The
// expiration date itself still counts as valid.
func (c *Coupon) IsValid() bool {

	if !c.Active {
		return false
	}

	return !dateOnly(time.Now()).After(dateOnly(c.ExpirationDate))
}

// ComputeDiscount returns the discount for the given subtotal. Invalid or
// expired coupons grant nothing; the discount never exceeds the subtotal.
func (c *Coupon) ComputeDiscount(subtotal float64) float64 {

	if subtotal <= 0 || !c.IsValid() {
		return 0
	}

	switch c.Type {
	case CouponTypePercentage:
		return money.Percentage(subtotal, c.Value)
	case CouponTypeFixed:
		return money.Min(c.Value, subtotal)
	default:
		return 0
	}
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
