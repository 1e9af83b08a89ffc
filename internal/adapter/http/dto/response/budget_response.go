package response

import (
	"time"

	"paintmarket/internal/domain/entities"
)

type PaintQuoteResponse struct {
	Area      float64 `json:"area"`
	Gallons   float64 `json:"gallons"`
	PaintType string  `json:"paintType"`
	Coats     int     `json:"coats"`
	Cost      float64 `json:"cost"`
}

func FromPaintQuote(q entities.PaintQuote) PaintQuoteResponse {
	return PaintQuoteResponse{
		Area:      q.Area,
		Gallons:   q.Gallons,
		PaintType: string(q.PaintType),
		Coats:     q.Coats,
		Cost:      q.Cost,
	}
}

type BudgetResponse struct {
	ID              string                    `json:"id"`
	UserID          string                    `json:"userId"`
	MinBudget       float64                   `json:"minBudget"`
	MaxBudget       float64                   `json:"maxBudget"`
	Rooms           []entities.RoomDimensions `json:"rooms"`
	TotalArea       float64                   `json:"totalArea"`
	Options         []entities.TierOption     `json:"options"`
	RecommendedTier string                    `json:"recommendedTier"`
	EstimatedCost   float64                   `json:"estimatedCost"`
	WithinBudget    bool                      `json:"withinBudget"`
	CreatedAt       time.Time                 `json:"createdAt"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		MinBudget:       b.MinBudget,
		MaxBudget:       b.MaxBudget,
		Rooms:           b.Rooms,
		TotalArea:       b.TotalArea,
		Options:         b.Options,
		RecommendedTier: string(b.RecommendedTier),
		EstimatedCost:   b.EstimatedCost,
		WithinBudget:    b.WithinBudget,
		CreatedAt:       b.CreatedAt,
	}
}

func FromBudgets(bs []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBudget(b))
	}
	return out
}
