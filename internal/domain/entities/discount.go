package entities

import "time"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypeTiered     DiscountType = "tiered"
	DiscountTypeBundle     DiscountType = "bundle"
)

func (t DiscountType) Valid() bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFixed, DiscountTypeTiered, DiscountTypeBundle:
		return true
	}
	return false
}

// DiscountConditions restrict the projects a discount applies to.
// Zero values mean "no restriction". RequiresPrimer and RequiresCeiling are
// tri-state: nil ignores the flag, otherwise the project flag must match.
type DiscountConditions struct {
	MinRooms        int             `json:"minRooms,omitempty"`
	MinArea         float64         `json:"minArea,omitempty"`
	MinBudget       float64         `json:"minBudget,omitempty"`
	MinCoats        int             `json:"minCoats,omitempty"`
	ProjectTypes    []ProjectType   `json:"projectTypes,omitempty"`
	WallConditions  []WallCondition `json:"wallConditions,omitempty"`
	RequiresPrimer  *bool           `json:"requiresPrimer,omitempty"`
	RequiresCeiling *bool           `json:"requiresCeiling,omitempty"`
}

type Tier struct {
	MinQuantity   int     `json:"minQuantity"`
	DiscountValue float64 `json:"discountValue"`
}

// BundleItem names a project flag that a bundle discount depends on:
// ceiling, primer, trim, accent_walls or textured_walls.
type BundleItem struct {
	Service  string `json:"service"`
	Required bool   `json:"required"`
}

type DiscountUsage struct {
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Discount is a contractor-owned (or global when ContractorID is empty) price reduction.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (code-index): code
type Discount struct {
	ID                string             `json:"id"`
	ContractorID      string             `json:"contractorId,omitempty"`
	Name              string             `json:"name"`
	Description       string             `json:"description,omitempty"`
	Code              string             `json:"code,omitempty"`
	Type              DiscountType       `json:"type"`
	Value             float64            `json:"value"`
	MaxDiscount       *float64           `json:"maxDiscount,omitempty"`
	Tiers             []Tier             `json:"tiers,omitempty"`
	BundleItems       []BundleItem       `json:"bundleItems,omitempty"`
	Conditions        DiscountConditions `json:"conditions"`
	StartDate         time.Time          `json:"startDate"`
	EndDate           time.Time          `json:"endDate"`
	MaxUsagePerUser   int                `json:"maxUsagePerUser,omitempty"`
	MaxTotalUsage     int                `json:"maxTotalUsage,omitempty"`
	CurrentUsageCount int                `json:"currentUsageCount"`
	Stackable         bool               `json:"stackable"`
	Priority          int                `json:"priority"`
	IsActive          bool               `json:"isActive"`
	UsedBy            []DiscountUsage    `json:"usedBy,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// UsageCountFor returns how many times userID has redeemed the discount.
func (d Discount) UsageCountFor(userID string) int {
	n := 0
	for _, u := range d.UsedBy {
		if u.UserID == userID {
			n++
		}
	}
	return n
}
