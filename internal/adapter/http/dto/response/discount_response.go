package response

import (
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase"
)

// DiscountResponse is a discount without its per-user usage log.
type DiscountResponse struct {
	ID                string                      `json:"id"`
	ContractorID      string                      `json:"contractorId,omitempty"`
	Name              string                      `json:"name"`
	Description       string                      `json:"description,omitempty"`
	Code              string                      `json:"code,omitempty"`
	RequiresCode      bool                        `json:"requiresCode"`
	Type              string                      `json:"type"`
	Value             float64                     `json:"value"`
	MaxDiscount       *float64                    `json:"maxDiscount,omitempty"`
	Tiers             []entities.Tier             `json:"tiers,omitempty"`
	BundleItems       []entities.BundleItem       `json:"bundleItems,omitempty"`
	Conditions        entities.DiscountConditions `json:"conditions"`
	StartDate         time.Time                   `json:"startDate"`
	EndDate           time.Time                   `json:"endDate"`
	MaxUsagePerUser   int                         `json:"maxUsagePerUser,omitempty"`
	MaxTotalUsage     int                         `json:"maxTotalUsage,omitempty"`
	CurrentUsageCount int                         `json:"currentUsageCount"`
	Stackable         bool                        `json:"stackable"`
	Priority          int                         `json:"priority"`
	IsActive          bool                        `json:"isActive"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

func FromDiscount(d entities.Discount) DiscountResponse {
	return DiscountResponse{
		ID:                d.ID,
		ContractorID:      d.ContractorID,
		Name:              d.Name,
		Description:       d.Description,
		Code:              d.Code,
		RequiresCode:      d.Code != "",
		Type:              string(d.Type),
		Value:             d.Value,
		MaxDiscount:       d.MaxDiscount,
		Tiers:             d.Tiers,
		BundleItems:       d.BundleItems,
		Conditions:        d.Conditions,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		MaxUsagePerUser:   d.MaxUsagePerUser,
		MaxTotalUsage:     d.MaxTotalUsage,
		CurrentUsageCount: d.CurrentUsageCount,
		Stackable:         d.Stackable,
		Priority:          d.Priority,
		IsActive:          d.IsActive,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// FromPublicDiscounts shapes the anonymous listing: promo codes are withheld,
// only the fact that one is required is shown.
func FromPublicDiscounts(ds []entities.Discount) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(ds))
	for _, d := range ds {
		res := FromDiscount(d)
		res.Code = ""
		out = append(out, res)
	}
	return out
}

type CodeValidationResponse struct {
	Valid          bool              `json:"valid"`
	Reason         string            `json:"reason,omitempty"`
	Discount       *DiscountResponse `json:"discount,omitempty"`
	DiscountAmount float64           `json:"discountAmount"`
	FinalAmount    float64           `json:"finalAmount"`
}

func FromCodeValidation(v usecase.CodeValidation) CodeValidationResponse {
	res := CodeValidationResponse{
		Valid:          v.Valid,
		Reason:         v.Reason,
		DiscountAmount: v.Amount,
		FinalAmount:    v.FinalAmount,
	}
	if v.Discount.ID != "" {
		d := FromDiscount(v.Discount)
		res.Discount = &d
	}
	return res
}

type DiscountStatsResponse struct {
	DiscountID    string  `json:"discountId"`
	Name          string  `json:"name"`
	Code          string  `json:"code,omitempty"`
	Type          string  `json:"type"`
	IsActive      bool    `json:"isActive"`
	Redemptions   int     `json:"redemptions"`
	TotalDiscount float64 `json:"totalDiscount"`
	UniqueUsers   int     `json:"uniqueUsers"`
}

type AnalyticsResponse struct {
	TotalDiscounts   int                     `json:"totalDiscounts"`
	ActiveDiscounts  int                     `json:"activeDiscounts"`
	TotalRedemptions int                     `json:"totalRedemptions"`
	TotalDiscount    float64                 `json:"totalDiscountGiven"`
	UniqueUsers      int                     `json:"uniqueUsers"`
	Discounts        []DiscountStatsResponse `json:"discounts"`
}

func FromAnalytics(a usecase.DiscountAnalytics) AnalyticsResponse {
	res := AnalyticsResponse{
		TotalDiscounts:   a.TotalDiscounts,
		ActiveDiscounts:  a.ActiveDiscounts,
		TotalRedemptions: a.TotalRedemptions,
		TotalDiscount:    a.TotalDiscount,
		UniqueUsers:      a.UniqueUsers,
		Discounts:        make([]DiscountStatsResponse, 0, len(a.Discounts)),
	}
	for _, s := range a.Discounts {
		res.Discounts = append(res.Discounts, DiscountStatsResponse{
			DiscountID:    s.DiscountID,
			Name:          s.Name,
			Code:          s.Code,
			Type:          string(s.Type),
			IsActive:      s.IsActive,
			Redemptions:   s.Redemptions,
			TotalDiscount: s.TotalDiscount,
			UniqueUsers:   s.UniqueUsers,
		})
	}
	return res
}
