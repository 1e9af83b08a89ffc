package request

import "paintmarket/internal/usecase"

type ContractorRequest struct {
	BusinessName string   `json:"businessName" binding:"required"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	Services     []string `json:"services"`
	HoursPerDay  float64  `json:"hoursPerDay"`
	WorkSpeed    float64  `json:"workSpeed"`
	HourlyRate   float64  `json:"hourlyRate"`
	Available    *bool    `json:"available"`
}

// ToInput defaults Available to true when omitted.
func (r ContractorRequest) ToInput() usecase.ContractorInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return usecase.ContractorInput{
		BusinessName: r.BusinessName,
		Email:        r.Email,
		Phone:        r.Phone,
		Location:     r.Location,
		Services:     r.Services,
		HoursPerDay:  r.HoursPerDay,
		WorkSpeed:    r.WorkSpeed,
		HourlyRate:   r.HourlyRate,
		Available:    available,
	}
}
