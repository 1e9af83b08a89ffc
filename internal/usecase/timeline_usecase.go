package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/domain/pricing"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidContractorID     = errors.New("invalid contractor id")
	ErrInvalidProject          = errors.New("invalid project details")
	ErrContractorUnavailable   = errors.New("contractor unavailable")
	ErrInvalidEstimateStatus   = errors.New("invalid estimate status")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrEstimateInCart          = errors.New("estimate is in the cart")
)

// EstimateRequest is a project to be priced for a contractor.
type EstimateRequest struct {
	ContractorID string
	Project      entities.ProjectDetails
	StartDate    time.Time
	PromoCode    string
	Notes        string
}

// EstimateQuote is the unsaved result of pricing a project.
type EstimateQuote struct {
	Contractor entities.Contractor
	Timeline   entities.Timeline
	Cost       entities.CostBreakdown
	Pricing    entities.Pricing
}

// ITimelineUseCase prices painting projects and manages saved estimates.
//
//   - POST /api/timeline/calculate => Calculate()
//   - POST /api/timeline/save => Save()
//   - PUT /api/timeline/:id/status => UpdateStatus()

type ITimelineUseCase interface {
	Calculate(ctx context.Context, p auth.Principal, req EstimateRequest) (EstimateQuote, error)
	Save(ctx context.Context, p auth.Principal, req EstimateRequest) (entities.ProjectEstimate, error)
	ListMine(ctx context.Context, p auth.Principal) ([]entities.ProjectEstimate, error)
	Get(ctx context.Context, p auth.Principal, id string) (entities.ProjectEstimate, error)
	UpdateStatus(ctx context.Context, p auth.Principal, id string, status entities.EstimateStatus) (entities.ProjectEstimate, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
}

type TimelineUseCase struct {
	estimates   interfaces.IEstimateRepository
	contractors interfaces.IContractorRepository
	discounts   interfaces.IDiscountRepository
	carts       interfaces.ICartRepository
	active      activeDiscounts
	now         func() time.Time
}

var _ ITimelineUseCase = (*TimelineUseCase)(nil)

func NewTimelineUseCase(
	estimates interfaces.IEstimateRepository,
	contractors interfaces.IContractorRepository,
	discounts interfaces.IDiscountRepository,
	cache interfaces.IDiscountCache,
	carts interfaces.ICartRepository,
) *TimelineUseCase {
	return &TimelineUseCase{
		estimates:   estimates,
		contractors: contractors,
		discounts:   discounts,
		carts:       carts,
		active:      activeDiscounts{repo: discounts, cache: cache},
		now:         utcNow,
	}
}

// Calculate prices the project without recording any discount usage.
func (u *TimelineUseCase) Calculate(ctx context.Context, p auth.Principal, req EstimateRequest) (EstimateQuote, error) {
	quote, _, err := u.quote(ctx, p, req, false)
	return quote, err
}

func (u *TimelineUseCase) quote(ctx context.Context, p auth.Principal, req EstimateRequest, fresh bool) (EstimateQuote, []entities.Discount, error) {
	contractorID := strings.TrimSpace(req.ContractorID)
	if contractorID == "" {
		return EstimateQuote{}, nil, ErrInvalidContractorID
	}
	if err := pricing.ValidateProject(req.Project); err != nil {
		return EstimateQuote{}, nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	now := u.now()
	var contractor entities.Contractor
	var candidates []entities.Discount
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := u.contractors.GetByID(gctx, contractorID)
		contractor = c
		return err
	})
	g.Go(func() error {
		ds, err := u.active.list(gctx, now, fresh)
		candidates = ds
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("[timeline][usecase] loading contractor/discounts failed",
			zap.String("contractor_id", contractorID), zap.Error(err))
		return EstimateQuote{}, nil, err
	}
	if contractor.ID == "" {
		return EstimateQuote{}, nil, ErrContractorNotFound
	}
	if !contractor.Available {
		return EstimateQuote{}, nil, ErrContractorUnavailable
	}

	rates := pricing.RatesFor(contractor)
	start := req.StartDate
	if start.IsZero() {
		start = now
	}
	timeline, err := pricing.CalculateTimeline(req.Project, rates, start)
	if err != nil {
		return EstimateQuote{}, nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}
	cost := pricing.CalculateCost(req.Project, timeline, rates)

	candidates = forContractor(candidates, contractor.ID)
	result := pricing.Evaluate(candidates, u.evaluationContext(p, req, cost.TotalCost, now))

	return EstimateQuote{Contractor: contractor, Timeline: timeline, Cost: cost, Pricing: result}, candidates, nil
}

func (u *TimelineUseCase) evaluationContext(p auth.Principal, req EstimateRequest, base float64, now time.Time) pricing.EvaluationContext {
	return pricing.EvaluationContext{
		Project:    req.Project,
		BaseAmount: base,
		UserID:     p.UserID,
		PromoCode:  req.PromoCode,
		Now:        now,
	}
}

// Save prices the project, redeems the applied discounts and stores the
// estimate as a draft.
func (u *TimelineUseCase) Save(ctx context.Context, p auth.Principal, req EstimateRequest) (entities.ProjectEstimate, error) {
	quote, candidates, err := u.quote(ctx, p, req, true)
	if err != nil {
		return entities.ProjectEstimate{}, err
	}

	now := u.now()
	result, err := u.redeem(ctx, candidates, u.evaluationContext(p, req, quote.Cost.TotalCost, now))
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	u.active.invalidate(ctx)

	e := entities.ProjectEstimate{
		ID:             uuid.NewString(),
		UserID:         p.UserID,
		ContractorID:   quote.Contractor.ID,
		ProjectDetails: req.Project,
		Timeline:       quote.Timeline,
		Cost:           quote.Cost,
		Pricing:        result,
		Status:         entities.EstimateStatusDraft,
		Notes:          strings.TrimSpace(req.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.estimates.Create(ctx, e)
	if err != nil {
		zap.L().Error("[timeline][usecase] estimate create failed", zap.String("estimate_id", e.ID), zap.Error(err))
		return entities.ProjectEstimate{}, err
	}
	zap.L().Info("[timeline][usecase] estimate saved",
		zap.String("estimate_id", created.ID),
		zap.String("contractor_id", created.ContractorID),
		zap.Float64("final_amount", created.Pricing.FinalAmount),
		zap.Int("discounts", len(created.Pricing.AppliedDiscounts)))
	return created, nil
}

// redeem evaluates the candidates and records usage for every applied
// discount. A discount whose total cap was reached meanwhile is dropped and
// the remaining candidates are evaluated again. Dropping a discount never
// changes the amounts of the discounts applied before it, so those are
// recorded once.
func (u *TimelineUseCase) redeem(ctx context.Context, candidates []entities.Discount, ec pricing.EvaluationContext) (entities.Pricing, error) {
	recorded := map[string]bool{}
	for {
		result := pricing.Evaluate(candidates, ec)
		capped := ""
		for _, ad := range result.AppliedDiscounts {
			if recorded[ad.DiscountID] {
				continue
			}
			err := u.discounts.RecordUsage(ctx, ad.DiscountID, entities.DiscountUsage{
				UserID:    ec.UserID,
				Amount:    ad.Amount,
				Timestamp: ec.Now,
			})
			if errors.Is(err, interfaces.ErrDiscountUsageCapReached) {
				zap.L().Info("[timeline][usecase] discount cap reached, re-evaluating", zap.String("discount_id", ad.DiscountID))
				capped = ad.DiscountID
				break
			}
			if err != nil {
				return entities.Pricing{}, err
			}
			recorded[ad.DiscountID] = true
		}
		if capped == "" {
			return result, nil
		}
		candidates = withoutDiscount(candidates, capped)
	}
}

func withoutDiscount(ds []entities.Discount, id string) []entities.Discount {
	out := make([]entities.Discount, 0, len(ds))
	for _, d := range ds {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

func (u *TimelineUseCase) ListMine(ctx context.Context, p auth.Principal) ([]entities.ProjectEstimate, error) {
	return u.estimates.ListByUserID(ctx, p.UserID)
}

// Get returns the estimate to its owner, its contractor or an admin.
func (u *TimelineUseCase) Get(ctx context.Context, p auth.Principal, id string) (entities.ProjectEstimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	if e.UserID == p.UserID || p.IsAdmin() {
		return e, nil
	}
	ok, err := isContractorFor(ctx, u.contractors, p, e.ContractorID)
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	if !ok {
		return entities.ProjectEstimate{}, ErrForbidden
	}
	return e, nil
}

// UpdateStatus moves the estimate along its lifecycle. The owner sends or
// withdraws it; its contractor approves, rejects and completes it.
func (u *TimelineUseCase) UpdateStatus(ctx context.Context, p auth.Principal, id string, status entities.EstimateStatus) (entities.ProjectEstimate, error) {
	if !status.Valid() {
		return entities.ProjectEstimate{}, ErrInvalidEstimateStatus
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	if !e.Status.CanTransitionTo(status) {
		return entities.ProjectEstimate{}, ErrInvalidStatusTransition
	}

	if !p.IsAdmin() {
		switch status {
		case entities.EstimateStatusDraft, entities.EstimateStatusSent:
			if e.UserID != p.UserID {
				return entities.ProjectEstimate{}, ErrForbidden
			}
		default:
			ok, err := isContractorFor(ctx, u.contractors, p, e.ContractorID)
			if err != nil {
				return entities.ProjectEstimate{}, err
			}
			if !ok {
				return entities.ProjectEstimate{}, ErrForbidden
			}
		}
	}

	updated, err := u.estimates.UpdateStatus(ctx, e.ID, status)
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	if updated.ID == "" {
		return entities.ProjectEstimate{}, ErrEstimateNotFound
	}
	zap.L().Info("[timeline][usecase] estimate status updated",
		zap.String("estimate_id", e.ID), zap.String("from", string(e.Status)), zap.String("to", string(status)))
	return updated, nil
}

// Delete removes an estimate of the caller unless it sits in their cart.
func (u *TimelineUseCase) Delete(ctx context.Context, p auth.Principal, id string) error {
	e, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if e.UserID != p.UserID && !p.IsAdmin() {
		return ErrForbidden
	}
	cart, err := u.carts.GetByUserID(ctx, e.UserID)
	if err != nil {
		return err
	}
	if cart.HasEstimate(e.ID) {
		return ErrEstimateInCart
	}
	return u.estimates.Delete(ctx, e.ID)
}

func (u *TimelineUseCase) load(ctx context.Context, id string) (entities.ProjectEstimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectEstimate{}, ErrInvalidEstimateID
	}
	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectEstimate{}, err
	}
	if e.ID == "" {
		return entities.ProjectEstimate{}, ErrEstimateNotFound
	}
	return e, nil
}
