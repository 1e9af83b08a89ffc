package response

import (
	"time"

	"paintmarket/internal/domain/entities"
)

type ContractorResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	BusinessName string    `json:"businessName"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Services     []string  `json:"services"`
	HoursPerDay  float64   `json:"hoursPerDay"`
	WorkSpeed    float64   `json:"workSpeed"`
	HourlyRate   float64   `json:"hourlyRate"`
	Available    bool      `json:"available"`
	Rating       float64   `json:"rating"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromContractor(c entities.Contractor) ContractorResponse {
	services := c.Services
	if services == nil {
		services = []string{}
	}
	return ContractorResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		BusinessName: c.BusinessName,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		Services:     services,
		HoursPerDay:  c.HoursPerDay,
		WorkSpeed:    c.WorkSpeed,
		HourlyRate:   c.HourlyRate,
		Available:    c.Available,
		Rating:       c.Rating,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromContractors(cs []entities.Contractor) []ContractorResponse {
	out := make([]ContractorResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContractor(c))
	}
	return out
}
