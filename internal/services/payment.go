package service

import (
	"github.com/quickbites/ordering/internal/models"
	"github.com/quickbites/ordering/internal/payments"
)

// PaymentService dispatches an amount to a payment-method variant. A nil
// method or non-positive amount is rejected before the variant is invoked;
// everything else is the variant's own decision. A false result is a declined
// payment, not an error.
type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

func (s *PaymentService) Process(method payments.Orderable, amount float64) bool {

	if method == nil || amount <= 0 {
		return false
	}

	return method.Process(amount)
}

// MethodFromDetails builds the payment variant selected by the request.
func MethodFromDetails(details *models.PaymentDetails) payments.Orderable {

	if details == nil {
		return nil
	}

	switch details.Method {
	case "cash":
		return payments.NewCashPayment(details.Receiver)
	case "credit_card":
		return payments.NewCreditCardPayment(details.CardNumber, details.HolderName, details.Expiry, details.CVV)
	case "debit_card":
		return payments.NewDebitCardPayment(details.CardNumber, details.HolderName)
	default:
		return nil
	}
}
