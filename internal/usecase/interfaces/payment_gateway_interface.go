package interfaces

import (
	"context"
	"paintmarket/internal/domain/entities"
)

// PaymentCharge is what the order use case asks a gateway to collect.
type PaymentCharge struct {
	OrderID     string
	OrderNumber string
	Amount      float64
	PayerEmail  string
	Card        entities.CardDetails
	CardToken   string
}

// IPaymentGateway abstracts payment providers (the built-in simulator or
// Mercado Pago).
type IPaymentGateway interface {
	Charge(ctx context.Context, charge PaymentCharge) (transactionID string, providerStatus string, err error)
}
