package entities

import "time"

// PaymentStatus represents the payment processing outcome of an order.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
)

// CardDetails holds the redacted card; the full number and CVV are never stored.
type CardDetails struct {
	Last4 string `json:"last4"`
	Brand string `json:"brand"`
}

// Payment is the payment sub-document of an order.
type Payment struct {
	Method         PaymentMethod `json:"method"`
	Status         PaymentStatus `json:"status"`
	TransactionID  string        `json:"transactionId,omitempty"`
	ProviderStatus string        `json:"providerStatus,omitempty"`
	CardDetails    *CardDetails  `json:"cardDetails,omitempty"`
	FailureReason  string        `json:"failureReason,omitempty"`
	PaidAt         *time.Time    `json:"paidAt,omitempty"`
	RefundedAt     *time.Time    `json:"refundedAt,omitempty"`
}
