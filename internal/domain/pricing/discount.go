package pricing

import (
	"math"
	"sort"
	"strings"
	"time"

	"paintmarket/internal/domain/entities"
)

// EvaluationContext is everything a discount predicate looks at.
type EvaluationContext struct {
	Project    entities.ProjectDetails
	BaseAmount float64
	UserID     string
	PromoCode  string
	Now        time.Time
}

// SortByPriority orders candidates the way the evaluator expects them:
// priority descending, then most recently created first.
func SortByPriority(ds []entities.Discount) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Priority != ds[j].Priority {
			return ds[i].Priority > ds[j].Priority
		}
		return ds[i].CreatedAt.After(ds[j].CreatedAt)
	})
}

// IsCurrentlyValid checks the active flag, the validity window and usage caps
// for userID; project conditions are not considered.
func IsCurrentlyValid(d entities.Discount, userID string, now time.Time) bool {
	if !d.IsActive {
		return false
	}
	if now.Before(d.StartDate) || now.After(d.EndDate) {
		return false
	}
	if d.MaxTotalUsage > 0 && d.CurrentUsageCount >= d.MaxTotalUsage {
		return false
	}
	if d.MaxUsagePerUser > 0 && userID != "" && d.UsageCountFor(userID) >= d.MaxUsagePerUser {
		return false
	}
	return true
}

// ConditionsMatch checks every populated condition of d against the project.
func ConditionsMatch(d entities.Discount, p entities.ProjectDetails, base float64) bool {
	c := d.Conditions
	if c.MinRooms > 0 && p.NumberOfRooms < c.MinRooms {
		return false
	}
	if c.MinArea > 0 && p.TotalArea() < c.MinArea {
		return false
	}
	if c.MinBudget > 0 && base < c.MinBudget {
		return false
	}
	if c.MinCoats > 0 && p.Coats < c.MinCoats {
		return false
	}
	if len(c.ProjectTypes) > 0 && !containsProjectType(c.ProjectTypes, p.ProjectType) {
		return false
	}
	if len(c.WallConditions) > 0 && !containsWallCondition(c.WallConditions, p.WallCondition) {
		return false
	}
	if c.RequiresPrimer != nil && *c.RequiresPrimer != p.IncludePrimer {
		return false
	}
	if c.RequiresCeiling != nil && *c.RequiresCeiling != p.IncludeCeiling {
		return false
	}
	if d.Type == entities.DiscountTypeBundle && !bundleSatisfied(d.BundleItems, p) {
		return false
	}
	return true
}

// IsApplicable reports whether d may be applied in ctx. Discounts carrying a
// code only apply when the same promo code was supplied.
func IsApplicable(d entities.Discount, ctx EvaluationContext) bool {
	if d.Code != "" && !sameCode(d.Code, ctx.PromoCode) {
		return false
	}
	return IsCurrentlyValid(d, ctx.UserID, ctx.Now) && ConditionsMatch(d, ctx.Project, ctx.BaseAmount)
}

// Amount computes what d takes off base.
func Amount(d entities.Discount, base float64, p entities.ProjectDetails) float64 {
	if base <= 0 {
		return 0
	}
	var amount float64
	switch d.Type {
	case entities.DiscountTypePercentage:
		amount = percentOf(base, d.Value)
		if d.MaxDiscount != nil {
			amount = math.Min(amount, *d.MaxDiscount)
		}
	case entities.DiscountTypeFixed:
		amount = d.Value
	case entities.DiscountTypeTiered:
		tier, ok := tierFor(d.Tiers, p.NumberOfRooms)
		if !ok {
			return 0
		}
		amount = percentOf(base, tier.DiscountValue)
	case entities.DiscountTypeBundle:
		amount = percentOf(base, d.Value)
	}
	if amount < 0 {
		return 0
	}
	return Round2(math.Min(amount, base))
}

// Evaluate applies at most one primary (non-stackable) discount to the base
// amount, then every applicable stackable discount in order, each against
// what remains after the previous ones.
func Evaluate(candidates []entities.Discount, ctx EvaluationContext) entities.Pricing {
	var primary *entities.Discount
	var stackable []entities.Discount
	for i := range candidates {
		d := candidates[i]
		if !IsApplicable(d, ctx) {
			continue
		}
		if d.Stackable {
			stackable = append(stackable, d)
		} else if primary == nil {
			primary = &candidates[i]
		}
	}

	base := Round2(ctx.BaseAmount)
	remaining := base
	applied := make([]entities.AppliedDiscount, 0, len(stackable)+1)

	apply := func(d entities.Discount) {
		amount := Amount(d, remaining, ctx.Project)
		if amount <= 0 {
			return
		}
		remaining = Round2(remaining - amount)
		applied = append(applied, entities.AppliedDiscount{
			DiscountID: d.ID,
			Name:       d.Name,
			Code:       d.Code,
			Type:       d.Type,
			Value:      d.Value,
			Amount:     amount,
			Stackable:  d.Stackable,
		})
	}

	if primary != nil {
		apply(*primary)
	}
	for _, d := range stackable {
		apply(d)
	}

	total := Round2(base - remaining)
	pct := 0.0
	if base > 0 {
		pct = Round2(total / base * 100)
	}
	return entities.Pricing{
		OriginalAmount:     base,
		TotalDiscount:      total,
		FinalAmount:        remaining,
		DiscountPercentage: pct,
		AppliedDiscounts:   applied,
	}
}

func tierFor(tiers []entities.Tier, rooms int) (entities.Tier, bool) {
	var best entities.Tier
	found := false
	for _, t := range tiers {
		if t.MinQuantity <= rooms && (!found || t.MinQuantity > best.MinQuantity) {
			best = t
			found = true
		}
	}
	return best, found
}

func bundleSatisfied(items []entities.BundleItem, p entities.ProjectDetails) bool {
	for _, it := range items {
		if !it.Required {
			continue
		}
		if !projectFlag(p, it.Service) {
			return false
		}
	}
	return true
}

func projectFlag(p entities.ProjectDetails, service string) bool {
	switch service {
	case "ceiling":
		return p.IncludeCeiling
	case "primer":
		return p.IncludePrimer
	case "trim":
		return p.IncludeTrim
	case "accent_walls":
		return p.HasAccentWalls
	case "textured_walls":
		return p.HasTexturedWalls
	}
	return false
}

func containsProjectType(list []entities.ProjectType, v entities.ProjectType) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsWallCondition(list []entities.WallCondition, v entities.WallCondition) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// NormalizeCode canonicalizes a promo code for storage and comparison.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func sameCode(a, b string) bool {
	return b != "" && NormalizeCode(a) == NormalizeCode(b)
}
