package request

import (
	"strings"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase"
)

// PaintEstimateRequest is the body of the public POST /api/estimate calculator.
type PaintEstimateRequest struct {
	Length    float64 `json:"length" binding:"required"`
	Width     float64 `json:"width" binding:"required"`
	Height    float64 `json:"height" binding:"required"`
	PaintType string  `json:"paintType"`
	Coats     int     `json:"coats"`
}

func (r PaintEstimateRequest) ToInput() usecase.PaintInput {
	return usecase.PaintInput{
		Room:      entities.RoomDimensions{Length: r.Length, Width: r.Width, Height: r.Height},
		PaintType: entities.PaintType(strings.ToLower(strings.TrimSpace(r.PaintType))),
		Coats:     r.Coats,
	}
}

type RoomRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type BudgetRequest struct {
	MinBudget float64       `json:"minBudget"`
	MaxBudget float64       `json:"maxBudget" binding:"required"`
	Rooms     []RoomRequest `json:"rooms" binding:"required"`
}

func (r BudgetRequest) ToInput() usecase.BudgetInput {
	in := usecase.BudgetInput{MinBudget: r.MinBudget, MaxBudget: r.MaxBudget}
	for _, room := range r.Rooms {
		in.Rooms = append(in.Rooms, entities.RoomDimensions{Length: room.Length, Width: room.Width, Height: room.Height})
	}
	return in
}
