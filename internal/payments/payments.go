// Package payments holds the payment-method variants. Processing is a local
// authorization simulation; no gateway is called.
package payments

import "strings"

// Orderable is the payment capability. Implementations validate their own
// details and report whether the amount was accepted.
type Orderable interface {
	Process(amount float64) bool
}

// CashPayment succeeds for positive amounts when a receiver is set.
type CashPayment struct {
	receiver string
}

func NewCashPayment(receiver string) *CashPayment {
	return &CashPayment{receiver: receiver}
}

func (p *CashPayment) Process(amount float64) bool {
	return strings.TrimSpace(p.receiver) != "" && amount > 0
}

// CreditCardPayment accepts syntactically plausible card details.
type CreditCardPayment struct {
	cardNumber string
	holderName string
	expiry     string // MM/YY
	cvv        string
}

func NewCreditCardPayment(cardNumber, holderName, expiry, cvv string) *CreditCardPayment {
	return &CreditCardPayment{
		cardNumber: cardNumber,
		holderName: holderName,
		expiry:     expiry,
		cvv:        cvv,
	}
}

func (p *CreditCardPayment) valid() bool {
	return len(stripSpaces(p.cardNumber)) >= 12 &&
		strings.TrimSpace(p.holderName) != "" &&
		strings.TrimSpace(p.expiry) != "" &&
		len(p.cvv) >= 3
}

func (p *CreditCardPayment) Process(amount float64) bool {

	if amount <= 0 {
		return false
	}

	return p.valid()
}

type DebitCardPayment struct {
	cardNumber string
	holderName string
}

func NewDebitCardPayment(cardNumber, holderName string) *DebitCardPayment {
	return &DebitCardPayment{cardNumber: cardNumber, holderName: holderName}
}

func (p *DebitCardPayment) valid() bool {
	return len(stripSpaces(p.cardNumber)) >= 10 && strings.TrimSpace(p.holderName) != ""
}

func (p *DebitCardPayment) Process(amount float64) bool {

	if amount <= 0 {
		return false
	}

	return p.valid()
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
