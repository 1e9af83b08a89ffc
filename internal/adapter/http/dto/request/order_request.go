package request

import (
	"strconv"
	"strings"

	"paintmarket/internal/usecase"
)

type CreateOrderRequest struct {
	Notes string `json:"notes"`
}

type PaymentDetailsRequest struct {
	CardNumber     string `json:"cardNumber" binding:"required"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
	CardToken      string `json:"cardToken"`
}

// ProcessPaymentRequest is the body of POST /api/orders/payment/process.
type ProcessPaymentRequest struct {
	OrderID        string                `json:"orderId" binding:"required"`
	PaymentDetails PaymentDetailsRequest `json:"paymentDetails" binding:"required"`
}

// ToCard splits the MM/YY expiry. A malformed expiry becomes month 0 so the
// use case rejects it and records the failed attempt.
func (r ProcessPaymentRequest) ToCard() usecase.CardInput {
	m, y := parseExpiry(r.PaymentDetails.ExpiryDate)
	return usecase.CardInput{
		Number:      r.PaymentDetails.CardNumber,
		HolderName:  strings.TrimSpace(r.PaymentDetails.CardholderName),
		ExpiryMonth: m,
		ExpiryYear:  y,
		CVV:         r.PaymentDetails.CVV,
		Token:       strings.TrimSpace(r.PaymentDetails.CardToken),
	}
}

func parseExpiry(s string) (month, year int) {
	ms, ys, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(ms))
	if err != nil {
		return 0, 0
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0
	}
	return m, y
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}
