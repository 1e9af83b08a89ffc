package response

import (
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase"
)

type ContractorSummary struct {
	ID           string  `json:"id"`
	BusinessName string  `json:"businessName"`
	HourlyRate   float64 `json:"hourlyRate"`
	Rating       float64 `json:"rating"`
}

// QuoteResponse is the unsaved result of POST /api/timeline/calculate.
type QuoteResponse struct {
	Contractor ContractorSummary      `json:"contractor"`
	Timeline   entities.Timeline      `json:"timeline"`
	Cost       entities.CostBreakdown `json:"cost"`
	Pricing    entities.Pricing       `json:"pricing"`
}

func FromQuote(q usecase.EstimateQuote) QuoteResponse {
	return QuoteResponse{
		Contractor: ContractorSummary{
			ID:           q.Contractor.ID,
			BusinessName: q.Contractor.BusinessName,
			HourlyRate:   q.Contractor.HourlyRate,
			Rating:       q.Contractor.Rating,
		},
		Timeline: q.Timeline,
		Cost:     q.Cost,
		Pricing:  withAppliedDiscounts(q.Pricing),
	}
}

type EstimateResponse struct {
	ID             string                  `json:"id"`
	UserID         string                  `json:"userId"`
	ContractorID   string                  `json:"contractorId"`
	ProjectDetails entities.ProjectDetails `json:"projectDetails"`
	Timeline       entities.Timeline       `json:"timeline"`
	Cost           entities.CostBreakdown  `json:"cost"`
	Pricing        entities.Pricing        `json:"pricing"`
	Status         string                  `json:"status"`
	Notes          string                  `json:"notes,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func FromEstimate(e entities.ProjectEstimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		ContractorID:   e.ContractorID,
		ProjectDetails: e.ProjectDetails,
		Timeline:       e.Timeline,
		Cost:           e.Cost,
		Pricing:        withAppliedDiscounts(e.Pricing),
		Status:         string(e.Status),
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEstimates(es []entities.ProjectEstimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}

// withAppliedDiscounts renders a missing discount list as [] instead of null.
func withAppliedDiscounts(p entities.Pricing) entities.Pricing {
	if p.AppliedDiscounts == nil {
		p.AppliedDiscounts = []entities.AppliedDiscount{}
	}
	return p
}
