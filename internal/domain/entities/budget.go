package entities

import "time"

type PaintType string

const (
	PaintTypeEconomy  PaintType = "economy"
	PaintTypeStandard PaintType = "standard"
	PaintTypePremium  PaintType = "premium"
)

func (p PaintType) Valid() bool {
	switch p {
	case PaintTypeEconomy, PaintTypeStandard, PaintTypePremium:
		return true
	}
	return false
}

type RoomDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PaintQuote is the answer of the simple public paint calculator.
type PaintQuote struct {
	Area      float64   `json:"area"`
	Gallons   float64   `json:"gallons"`
	PaintType PaintType `json:"paintType"`
	Coats     int       `json:"coats"`
	Cost      float64   `json:"cost"`
}

type TierOption struct {
	PaintType PaintType `json:"paintType"`
	Cost      float64   `json:"cost"`
}

// Budget stores a user's budget range and the paint tier recommended for it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Budget struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	MinBudget       float64          `json:"minBudget"`
	MaxBudget       float64          `json:"maxBudget"`
	Rooms           []RoomDimensions `json:"rooms"`
	TotalArea       float64          `json:"totalArea"`
	Options         []TierOption     `json:"options"`
	RecommendedTier PaintType        `json:"recommendedTier"`
	EstimatedCost   float64          `json:"estimatedCost"`
	WithinBudget    bool             `json:"withinBudget"`
	CreatedAt       time.Time        `json:"createdAt"`
}
