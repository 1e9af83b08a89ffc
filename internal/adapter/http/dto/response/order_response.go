package response

import (
	"time"

	"paintmarket/internal/domain/entities"
)

type OrderResponse struct {
	ID                 string               `json:"id"`
	OrderNumber        string               `json:"orderNumber"`
	UserID             string               `json:"userId"`
	Items              []entities.OrderItem `json:"items"`
	Subtotal           float64              `json:"subtotal"`
	TotalDiscount      float64              `json:"totalDiscount"`
	Tax                float64              `json:"tax"`
	Total              float64              `json:"total"`
	Payment            entities.Payment     `json:"payment"`
	Status             string               `json:"status"`
	Notes              string               `json:"notes,omitempty"`
	CancellationReason string               `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		UserID:             o.UserID,
		Items:              o.Items,
		Subtotal:           o.Subtotal,
		TotalDiscount:      o.TotalDiscount,
		Tax:                o.Tax,
		Total:              o.Total,
		Payment:            o.Payment,
		Status:             string(o.Status),
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// PaymentResponse answers POST /api/orders/payment/process.
type PaymentResponse struct {
	Success       bool          `json:"success"`
	TransactionID string        `json:"transactionId"`
	Order         OrderResponse `json:"order"`
}

func FromPaidOrder(o entities.Order) PaymentResponse {
	return PaymentResponse{
		Success:       o.Payment.Status == entities.PaymentStatusCompleted,
		TransactionID: o.Payment.TransactionID,
		Order:         FromOrder(o),
	}
}
