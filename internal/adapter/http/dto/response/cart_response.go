package response

import (
	"time"

	"paintmarket/internal/domain/entities"
)

type CartResponse struct {
	Items         []entities.CartItem `json:"items"`
	ItemCount     int                 `json:"itemCount"`
	TotalAmount   float64             `json:"totalAmount"`
	TotalDiscount float64             `json:"totalDiscount"`
	FinalAmount   float64             `json:"finalAmount"`
	UpdatedAt     *time.Time          `json:"updatedAt,omitempty"`
}

func FromCart(c entities.Cart) CartResponse {
	res := CartResponse{
		Items:         c.Items,
		ItemCount:     len(c.Items),
		TotalAmount:   c.TotalAmount,
		TotalDiscount: c.TotalDiscount,
		FinalAmount:   c.FinalAmount,
	}
	if res.Items == nil {
		res.Items = []entities.CartItem{}
	}
	if !c.UpdatedAt.IsZero() {
		updated := c.UpdatedAt
		res.UpdatedAt = &updated
	}
	return res
}
