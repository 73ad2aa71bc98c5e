// Package money holds the cent-rounding rules shared by the cart and the
// order aggregate. Amounts cross API and storage boundaries as float64; all
// arithmetic that can accumulate binary-float noise goes through decimals.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds an amount to cents, half up.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// LineSubtotal returns unitPrice*quantity rounded to cents.
func LineSubtotal(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// Percentage returns amount*(percent/100), unrounded. Callers round once at
// the point the value becomes a payable total.
func Percentage(amount, percent float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(percent)).
		Div(hundred).
		InexactFloat64()
}

// Min returns the smaller of two amounts.
func Min(a, b float64) float64 {
	return decimal.Min(decimal.NewFromFloat(a), decimal.NewFromFloat(b)).InexactFloat64()
}
