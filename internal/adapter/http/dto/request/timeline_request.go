package request

import (
	"errors"
	"strings"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")

// ProjectRequest holds the project fields shared by the calculator endpoints.
type ProjectRequest struct {
	ProjectType      string  `json:"projectType"`
	NumberOfRooms    int     `json:"numberOfRooms"`
	RoomSize         float64 `json:"roomSize"`
	WallCondition    string  `json:"wallCondition"`
	Coats            int     `json:"coats"`
	IncludeCeiling   bool    `json:"includeCeiling"`
	IncludePrimer    bool    `json:"includePrimer"`
	IncludeTrim      bool    `json:"includeTrim"`
	HasAccentWalls   bool    `json:"hasAccentWalls"`
	HasTexturedWalls bool    `json:"hasTexturedWalls"`
}

func (r ProjectRequest) ToProject() entities.ProjectDetails {
	return entities.ProjectDetails{
		ProjectType:      entities.ProjectType(strings.ToLower(strings.TrimSpace(r.ProjectType))),
		NumberOfRooms:    r.NumberOfRooms,
		RoomSize:         r.RoomSize,
		WallCondition:    entities.WallCondition(strings.ToLower(strings.TrimSpace(r.WallCondition))),
		Coats:            r.Coats,
		IncludeCeiling:   r.IncludeCeiling,
		IncludePrimer:    r.IncludePrimer,
		IncludeTrim:      r.IncludeTrim,
		HasAccentWalls:   r.HasAccentWalls,
		HasTexturedWalls: r.HasTexturedWalls,
	}
}

// TimelineRequest is the body of POST /api/timeline/calculate and /save.
type TimelineRequest struct {
	ProjectRequest
	ContractorID string `json:"contractorId" binding:"required"`
	StartDate    string `json:"startDate"`
	PromoCode    string `json:"promoCode"`
	Notes        string `json:"notes"`
}

func (r TimelineRequest) ToEstimateRequest() (usecase.EstimateRequest, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.EstimateRequest{}, err
	}
	return usecase.EstimateRequest{
		ContractorID: strings.TrimSpace(r.ContractorID),
		Project:      r.ToProject(),
		StartDate:    start,
		PromoCode:    r.PromoCode,
		Notes:        r.Notes,
	}, nil
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ParseDate accepts a calendar date or an RFC3339 timestamp. Empty input
// yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
