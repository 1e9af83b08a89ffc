package entities

import "time"

// EstimateStatus represents the lifecycle of a saved project estimate.
//
// Transitions:
//   - draft -> sent (client shares it with the contractor)
//   - sent -> approved | rejected (contractor answers)
//   - approved -> completed (work finished)
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusCompleted EstimateStatus = "completed"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved, EstimateStatusRejected, EstimateStatusCompleted:
		return true
	}
	return false
}

var estimateTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateStatusDraft:    {EstimateStatusSent},
	EstimateStatusSent:     {EstimateStatusApproved, EstimateStatusRejected, EstimateStatusDraft},
	EstimateStatusApproved: {EstimateStatusCompleted},
}

// CanTransitionTo reports whether the estimate may move from s to next.
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	for _, allowed := range estimateTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ProjectType string

const (
	ProjectTypeInterior   ProjectType = "interior"
	ProjectTypeExterior   ProjectType = "exterior"
	ProjectTypeCommercial ProjectType = "commercial"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeInterior, ProjectTypeExterior, ProjectTypeCommercial:
		return true
	}
	return false
}

type WallCondition string

const (
	WallConditionSmooth      WallCondition = "smooth"
	WallConditionTextured    WallCondition = "textured"
	WallConditionNeedsRepair WallCondition = "needs_repair"
)

func (w WallCondition) Valid() bool {
	switch w {
	case WallConditionSmooth, WallConditionTextured, WallConditionNeedsRepair:
		return true
	}
	return false
}

// ProjectDetails are the attributes of a painting project fed to the calculator.
type ProjectDetails struct {
	ProjectType      ProjectType   `json:"projectType"`
	NumberOfRooms    int           `json:"numberOfRooms"`
	RoomSize         float64       `json:"roomSize"`
	WallCondition    WallCondition `json:"wallCondition"`
	Coats            int           `json:"coats"`
	IncludeCeiling   bool          `json:"includeCeiling"`
	IncludePrimer    bool          `json:"includePrimer"`
	IncludeTrim      bool          `json:"includeTrim"`
	HasAccentWalls   bool          `json:"hasAccentWalls"`
	HasTexturedWalls bool          `json:"hasTexturedWalls"`
}

// TotalArea is the paintable area in square feet.
func (p ProjectDetails) TotalArea() float64 {
	return float64(p.NumberOfRooms) * p.RoomSize
}

type Phase struct {
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

type Timeline struct {
	TotalHours     float64   `json:"totalHours"`
	WorkingDays    int       `json:"workingDays"`
	TotalDays      int       `json:"totalDays"`
	DryingTime     float64   `json:"dryingTime"`
	WeatherDelay   float64   `json:"weatherDelay"`
	HoursPerDay    float64   `json:"hoursPerDay"`
	Phases         []Phase   `json:"phases"`
	StartDate      time.Time `json:"startDate"`
	CompletionDate time.Time `json:"completionDate"`
}

type CostBreakdown struct {
	LaborCost    float64 `json:"laborCost"`
	PaintCost    float64 `json:"paintCost"`
	PrimerCost   float64 `json:"primerCost"`
	TrimCost     float64 `json:"trimCost"`
	MaterialCost float64 `json:"materialCost"`
	TotalCost    float64 `json:"totalCost"`
}

// AppliedDiscount is the snapshot of one discount applied to a price.
type AppliedDiscount struct {
	DiscountID string       `json:"discountId"`
	Name       string       `json:"name"`
	Code       string       `json:"code,omitempty"`
	Type       DiscountType `json:"type"`
	Value      float64      `json:"value"`
	Amount     float64      `json:"amount"`
	Stackable  bool         `json:"stackable"`
}

// Pricing is the discounted price of an estimate.
type Pricing struct {
	OriginalAmount     float64           `json:"originalAmount"`
	TotalDiscount      float64           `json:"totalDiscount"`
	FinalAmount        float64           `json:"finalAmount"`
	DiscountPercentage float64           `json:"discountPercentage"`
	AppliedDiscounts   []AppliedDiscount `json:"appliedDiscounts"`
}

// ProjectEstimate is a saved timeline and cost computation for one contractor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type ProjectEstimate struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	ContractorID   string         `json:"contractorId"`
	ProjectDetails ProjectDetails `json:"projectDetails"`
	Timeline       Timeline       `json:"timeline"`
	Cost           CostBreakdown  `json:"cost"`
	Pricing        Pricing        `json:"pricing"`
	Status         EstimateStatus `json:"status"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
