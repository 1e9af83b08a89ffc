package entities

import "time"

// Contractor is the public profile of a painting contractor.
// HoursPerDay, WorkSpeed (sq ft/hour) and HourlyRate feed the timeline calculator.
type Contractor struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	BusinessName string    `json:"businessName"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Services     []string  `json:"services,omitempty"`
	HoursPerDay  float64   `json:"hoursPerDay"`
	WorkSpeed    float64   `json:"workSpeed"`
	HourlyRate   float64   `json:"hourlyRate"`
	Available    bool      `json:"available"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
