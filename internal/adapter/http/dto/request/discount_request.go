package request

import (
	"strings"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase"
)

type TierRequest struct {
	MinQuantity   int     `json:"minQuantity"`
	DiscountValue float64 `json:"discountValue"`
}

type BundleItemRequest struct {
	Service  string `json:"service"`
	Required bool   `json:"required"`
}

type ConditionsRequest struct {
	MinRooms        int      `json:"minRooms"`
	MinArea         float64  `json:"minArea"`
	MinBudget       float64  `json:"minBudget"`
	MinCoats        int      `json:"minCoats"`
	ProjectTypes    []string `json:"projectTypes"`
	WallConditions  []string `json:"wallConditions"`
	RequiresPrimer  *bool    `json:"requiresPrimer"`
	RequiresCeiling *bool    `json:"requiresCeiling"`
}

// DiscountRequest is the body of POST /api/discounts/create and PUT /api/discounts/:id.
type DiscountRequest struct {
	ContractorID    string              `json:"contractorId"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Code            string              `json:"code"`
	Type            string              `json:"type"`
	Value           float64             `json:"value"`
	MaxDiscount     *float64            `json:"maxDiscount"`
	Tiers           []TierRequest       `json:"tiers"`
	BundleItems     []BundleItemRequest `json:"bundleItems"`
	Conditions      ConditionsRequest   `json:"conditions"`
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	MaxUsagePerUser int                 `json:"maxUsagePerUser"`
	MaxTotalUsage   int                 `json:"maxTotalUsage"`
	Stackable       bool                `json:"stackable"`
	Priority        int                 `json:"priority"`
	IsActive        *bool               `json:"isActive"`
}

func (r DiscountRequest) ToInput() (usecase.DiscountInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.DiscountInput{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return usecase.DiscountInput{}, err
	}

	in := usecase.DiscountInput{
		ContractorID:    strings.TrimSpace(r.ContractorID),
		Name:            r.Name,
		Description:     r.Description,
		Code:            r.Code,
		Type:            entities.DiscountType(strings.ToLower(strings.TrimSpace(r.Type))),
		Value:           r.Value,
		MaxDiscount:     r.MaxDiscount,
		StartDate:       start,
		EndDate:         end,
		MaxUsagePerUser: r.MaxUsagePerUser,
		MaxTotalUsage:   r.MaxTotalUsage,
		Stackable:       r.Stackable,
		Priority:        r.Priority,
		IsActive:        r.IsActive,
		Conditions: entities.DiscountConditions{
			MinRooms:        r.Conditions.MinRooms,
			MinArea:         r.Conditions.MinArea,
			MinBudget:       r.Conditions.MinBudget,
			MinCoats:        r.Conditions.MinCoats,
			RequiresPrimer:  r.Conditions.RequiresPrimer,
			RequiresCeiling: r.Conditions.RequiresCeiling,
		},
	}
	for _, t := range r.Tiers {
		in.Tiers = append(in.Tiers, entities.Tier{MinQuantity: t.MinQuantity, DiscountValue: t.DiscountValue})
	}
	for _, b := range r.BundleItems {
		in.BundleItems = append(in.BundleItems, entities.BundleItem{Service: b.Service, Required: b.Required})
	}
	for _, pt := range r.Conditions.ProjectTypes {
		in.Conditions.ProjectTypes = append(in.Conditions.ProjectTypes, entities.ProjectType(strings.ToLower(pt)))
	}
	for _, wc := range r.Conditions.WallConditions {
		in.Conditions.WallConditions = append(in.Conditions.WallConditions, entities.WallCondition(strings.ToLower(wc)))
	}
	return in, nil
}

// ValidateCodeRequest is the body of POST /api/discounts/validate.
type ValidateCodeRequest struct {
	ProjectRequest
	Code         string  `json:"code" binding:"required"`
	ContractorID string  `json:"contractorId"`
	BaseAmount   float64 `json:"baseAmount"`
}

func (r ValidateCodeRequest) ToCodeCheck() usecase.CodeCheck {
	return usecase.CodeCheck{
		Code:         r.Code,
		ContractorID: strings.TrimSpace(r.ContractorID),
		Project:      r.ToProject(),
		BaseAmount:   r.BaseAmount,
	}
}
