package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/domain/pricing"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDiscountNotFound     = errors.New("discount not found")
	ErrInvalidDiscountID    = errors.New("invalid discount id")
	ErrInvalidDiscount      = errors.New("invalid discount")
	ErrDiscountCodeTaken    = errors.New("discount code already in use")
	ErrInvalidPromoCode     = errors.New("invalid promo code")
	ErrInvalidBaseAmount    = errors.New("base amount must be positive")
	ErrDiscountInputMissing = errors.New("discount name, type and dates are required")
)

// DiscountInput carries the editable fields of a discount. The code is
// fixed at creation.
type DiscountInput struct {
	ContractorID    string
	Name            string
	Description     string
	Code            string
	Type            entities.DiscountType
	Value           float64
	MaxDiscount     *float64
	Tiers           []entities.Tier
	BundleItems     []entities.BundleItem
	Conditions      entities.DiscountConditions
	StartDate       time.Time
	EndDate         time.Time
	MaxUsagePerUser int
	MaxTotalUsage   int
	Stackable       bool
	Priority        int
	IsActive        *bool
}

// CodeCheck is a promo code to be checked against a project.
type CodeCheck struct {
	Code         string
	ContractorID string
	Project      entities.ProjectDetails
	BaseAmount   float64
}

// CodeValidation tells whether a promo code applies and what it would take off.
type CodeValidation struct {
	Discount    entities.Discount
	Valid       bool
	Reason      string
	Amount      float64
	FinalAmount float64
}

type DiscountStats struct {
	DiscountID    string
	Name          string
	Code          string
	Type          entities.DiscountType
	IsActive      bool
	Redemptions   int
	TotalDiscount float64
	UniqueUsers   int
}

type DiscountAnalytics struct {
	TotalDiscounts   int
	ActiveDiscounts  int
	TotalRedemptions int
	TotalDiscount    float64
	UniqueUsers      int
	Discounts        []DiscountStats
}

// IDiscountUseCase manages contractor discounts and promo codes.
type IDiscountUseCase interface {
	ListActive(ctx context.Context) ([]entities.Discount, error)
	ValidateCode(ctx context.Context, p auth.Principal, check CodeCheck) (CodeValidation, error)
	Create(ctx context.Context, p auth.Principal, in DiscountInput) (entities.Discount, error)
	Update(ctx context.Context, p auth.Principal, id string, in DiscountInput) (entities.Discount, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
	Analytics(ctx context.Context, p auth.Principal) (DiscountAnalytics, error)
}

type DiscountUseCase struct {
	repo        interfaces.IDiscountRepository
	contractors interfaces.IContractorRepository
	active      activeDiscounts
	now         func() time.Time
}

var _ IDiscountUseCase = (*DiscountUseCase)(nil)

func NewDiscountUseCase(repo interfaces.IDiscountRepository, cache interfaces.IDiscountCache, contractors interfaces.IContractorRepository) *DiscountUseCase {
	return &DiscountUseCase{
		repo:        repo,
		contractors: contractors,
		active:      activeDiscounts{repo: repo, cache: cache},
		now:         utcNow,
	}
}

func (u *DiscountUseCase) ListActive(ctx context.Context) ([]entities.Discount, error) {
	return u.active.list(ctx, u.now(), false)
}

func (u *DiscountUseCase) ValidateCode(ctx context.Context, p auth.Principal, check CodeCheck) (CodeValidation, error) {
	code := pricing.NormalizeCode(check.Code)
	if code == "" {
		return CodeValidation{}, ErrInvalidPromoCode
	}
	if check.BaseAmount <= 0 {
		return CodeValidation{}, ErrInvalidBaseAmount
	}

	d, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return CodeValidation{}, err
	}
	if d.ID == "" {
		return CodeValidation{}, ErrDiscountNotFound
	}

	res := CodeValidation{Discount: d, FinalAmount: pricing.Round2(check.BaseAmount)}
	switch {
	case d.ContractorID != "" && check.ContractorID != "" && d.ContractorID != check.ContractorID:
		res.Reason = "discount does not apply to this contractor"
	case !pricing.IsCurrentlyValid(d, p.UserID, u.now()):
		res.Reason = "discount is inactive, expired or fully used"
	case !pricing.ConditionsMatch(d, check.Project, check.BaseAmount):
		res.Reason = "project does not meet the discount conditions"
	default:
		res.Valid = true
		res.Amount = pricing.Amount(d, check.BaseAmount, check.Project)
		res.FinalAmount = pricing.Round2(check.BaseAmount - res.Amount)
	}
	return res, nil
}

func (u *DiscountUseCase) Create(ctx context.Context, p auth.Principal, in DiscountInput) (entities.Discount, error) {
	owner, err := u.ownerFor(ctx, p, in.ContractorID)
	if err != nil {
		return entities.Discount{}, err
	}
	if err := validateDiscountInput(in); err != nil {
		return entities.Discount{}, err
	}

	code := pricing.NormalizeCode(in.Code)
	if code != "" {
		existing, err := u.repo.GetByCode(ctx, code)
		if err != nil {
			return entities.Discount{}, err
		}
		if existing.ID != "" {
			return entities.Discount{}, ErrDiscountCodeTaken
		}
	}

	now := u.now()
	d := entities.Discount{
		ID:           uuid.NewString(),
		ContractorID: owner,
		Code:         code,
		IsActive:     true,
		UsedBy:       []entities.DiscountUsage{},
		CreatedAt:    now,
	}
	applyDiscountInput(&d, in, now)

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		zap.L().Error("[discount][usecase] create failed", zap.String("discount_id", d.ID), zap.Error(err))
		return entities.Discount{}, err
	}
	u.active.invalidate(ctx)
	zap.L().Info("[discount][usecase] discount created",
		zap.String("discount_id", created.ID), zap.String("contractor_id", created.ContractorID), zap.String("code", created.Code))
	return created, nil
}

func (u *DiscountUseCase) Update(ctx context.Context, p auth.Principal, id string, in DiscountInput) (entities.Discount, error) {
	d, err := u.loadOwned(ctx, p, id)
	if err != nil {
		return entities.Discount{}, err
	}
	if err := validateDiscountInput(in); err != nil {
		return entities.Discount{}, err
	}
	applyDiscountInput(&d, in, u.now())

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		return entities.Discount{}, err
	}
	if updated.ID == "" {
		return entities.Discount{}, ErrDiscountNotFound
	}
	u.active.invalidate(ctx)
	return updated, nil
}

func (u *DiscountUseCase) Delete(ctx context.Context, p auth.Principal, id string) error {
	d, err := u.loadOwned(ctx, p, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, d.ID); err != nil {
		return err
	}
	u.active.invalidate(ctx)
	zap.L().Info("[discount][usecase] discount deleted", zap.String("discount_id", d.ID))
	return nil
}

// Analytics summarizes redemptions of the calling contractor's discounts.
func (u *DiscountUseCase) Analytics(ctx context.Context, p auth.Principal) (DiscountAnalytics, error) {
	c, err := contractorOf(ctx, u.contractors, p)
	if err != nil {
		return DiscountAnalytics{}, err
	}
	ds, err := u.repo.ListByContractorID(ctx, c.ID)
	if err != nil {
		return DiscountAnalytics{}, err
	}
	pricing.SortByPriority(ds)

	out := DiscountAnalytics{TotalDiscounts: len(ds), Discounts: make([]DiscountStats, 0, len(ds))}
	allUsers := map[string]struct{}{}
	for _, d := range ds {
		users := map[string]struct{}{}
		stats := DiscountStats{
			DiscountID:  d.ID,
			Name:        d.Name,
			Code:        d.Code,
			Type:        d.Type,
			IsActive:    d.IsActive,
			Redemptions: d.CurrentUsageCount,
		}
		for _, usage := range d.UsedBy {
			stats.TotalDiscount += usage.Amount
			users[usage.UserID] = struct{}{}
			allUsers[usage.UserID] = struct{}{}
		}
		stats.TotalDiscount = pricing.Round2(stats.TotalDiscount)
		stats.UniqueUsers = len(users)

		if d.IsActive {
			out.ActiveDiscounts++
		}
		out.TotalRedemptions += stats.Redemptions
		out.TotalDiscount += stats.TotalDiscount
		out.Discounts = append(out.Discounts, stats)
	}
	out.TotalDiscount = pricing.Round2(out.TotalDiscount)
	out.UniqueUsers = len(allUsers)
	return out, nil
}

// ownerFor decides which contractor a new discount belongs to. Contractors
// always own their discounts; admins may create global ones.
func (u *DiscountUseCase) ownerFor(ctx context.Context, p auth.Principal, requested string) (string, error) {
	if p.IsAdmin() {
		return strings.TrimSpace(requested), nil
	}
	c, err := contractorOf(ctx, u.contractors, p)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (u *DiscountUseCase) loadOwned(ctx context.Context, p auth.Principal, id string) (entities.Discount, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Discount{}, ErrInvalidDiscountID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Discount{}, err
	}
	if d.ID == "" {
		return entities.Discount{}, ErrDiscountNotFound
	}
	if p.IsAdmin() {
		return d, nil
	}
	ok, err := isContractorFor(ctx, u.contractors, p, d.ContractorID)
	if err != nil {
		return entities.Discount{}, err
	}
	if !ok {
		return entities.Discount{}, ErrForbidden
	}
	return d, nil
}

func validateDiscountInput(in DiscountInput) error {
	if strings.TrimSpace(in.Name) == "" || !in.Type.Valid() || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return ErrDiscountInputMissing
	}
	if in.EndDate.Before(in.StartDate) || in.Value < 0 || in.MaxUsagePerUser < 0 || in.MaxTotalUsage < 0 {
		return ErrInvalidDiscount
	}
	if in.MaxDiscount != nil && *in.MaxDiscount < 0 {
		return ErrInvalidDiscount
	}
	switch in.Type {
	case entities.DiscountTypePercentage, entities.DiscountTypeBundle:
		if in.Value > 100 {
			return ErrInvalidDiscount
		}
	case entities.DiscountTypeTiered:
		if len(in.Tiers) == 0 {
			return ErrInvalidDiscount
		}
		for _, t := range in.Tiers {
			if t.MinQuantity < 0 || t.DiscountValue < 0 || t.DiscountValue > 100 {
				return ErrInvalidDiscount
			}
		}
	}
	if in.Type == entities.DiscountTypeBundle && len(in.BundleItems) == 0 {
		return ErrInvalidDiscount
	}
	return nil
}

func applyDiscountInput(d *entities.Discount, in DiscountInput, now time.Time) {
	d.Name = strings.TrimSpace(in.Name)
	d.Description = strings.TrimSpace(in.Description)
	d.Type = in.Type
	d.Value = in.Value
	d.MaxDiscount = in.MaxDiscount
	d.Tiers = in.Tiers
	d.BundleItems = in.BundleItems
	d.Conditions = in.Conditions
	d.StartDate = in.StartDate.UTC()
	d.EndDate = in.EndDate.UTC()
	d.MaxUsagePerUser = in.MaxUsagePerUser
	d.MaxTotalUsage = in.MaxTotalUsage
	d.Stackable = in.Stackable
	d.Priority = in.Priority
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	d.UpdatedAt = now
}
