package pricing

import (
	"errors"
	"math"

	"paintmarket/internal/domain/entities"
)

var (
	ErrInvalidDimensions = errors.New("dimensions must be positive")
	ErrInvalidPaintType  = errors.New("invalid paint type")
	ErrInvalidBudget     = errors.New("invalid budget range")
)

const (
	// CoverageSqFtPerGallon is the wall area one gallon covers for one coat.
	CoverageSqFtPerGallon = 350.0
	budgetCoats           = 2
)

var pricePerGallon = map[entities.PaintType]float64{
	entities.PaintTypeEconomy:  25,
	entities.PaintTypeStandard: 40,
	entities.PaintTypePremium:  65,
}

// tiers ordered cheapest first.
var paintTiers = []entities.PaintType{entities.PaintTypeEconomy, entities.PaintTypeStandard, entities.PaintTypePremium}

// WallArea is the area of the four walls of a room.
func WallArea(r entities.RoomDimensions) float64 {
	return 2 * (r.Length + r.Width) * r.Height
}

func gallonsFor(area float64, coats int) float64 {
	return math.Ceil(area*float64(coats)/CoverageSqFtPerGallon*10) / 10
}

// QuotePaint prices the paint for a single room.
func QuotePaint(r entities.RoomDimensions, paintType entities.PaintType, coats int) (entities.PaintQuote, error) {
	if r.Length <= 0 || r.Width <= 0 || r.Height <= 0 {
		return entities.PaintQuote{}, ErrInvalidDimensions
	}
	if paintType == "" {
		paintType = entities.PaintTypeStandard
	}
	if !paintType.Valid() {
		return entities.PaintQuote{}, ErrInvalidPaintType
	}
	if coats < 1 {
		coats = 1
	}

	area := Round2(WallArea(r))
	gallons := gallonsFor(area, coats)
	return entities.PaintQuote{
		Area:      area,
		Gallons:   gallons,
		PaintType: paintType,
		Coats:     coats,
		Cost:      Round2(gallons * pricePerGallon[paintType]),
	}, nil
}

// Recommendation is the budget recommender result.
type Recommendation struct {
	TotalArea       float64
	Options         []entities.TierOption
	RecommendedTier entities.PaintType
	EstimatedCost   float64
	WithinBudget    bool
}

// RecommendTier prices every paint tier for the rooms and picks the most
// expensive one that fits under maxBudget. When none fits, economy is
// returned with WithinBudget=false.
func RecommendTier(rooms []entities.RoomDimensions, minBudget, maxBudget float64) (Recommendation, error) {
	if minBudget < 0 || maxBudget <= 0 || minBudget > maxBudget {
		return Recommendation{}, ErrInvalidBudget
	}
	if len(rooms) == 0 {
		return Recommendation{}, ErrInvalidDimensions
	}

	area := 0.0
	for _, r := range rooms {
		if r.Length <= 0 || r.Width <= 0 || r.Height <= 0 {
			return Recommendation{}, ErrInvalidDimensions
		}
		area += WallArea(r)
	}
	gallons := gallonsFor(area, budgetCoats)

	rec := Recommendation{TotalArea: Round2(area), RecommendedTier: entities.PaintTypeEconomy}
	for _, tier := range paintTiers {
		cost := Round2(gallons * pricePerGallon[tier])
		rec.Options = append(rec.Options, entities.TierOption{PaintType: tier, Cost: cost})
		if cost <= maxBudget {
			rec.RecommendedTier = tier
			rec.EstimatedCost = cost
			rec.WithinBudget = true
		}
	}
	if !rec.WithinBudget {
		rec.EstimatedCost = rec.Options[0].Cost
	}
	return rec, nil
}
