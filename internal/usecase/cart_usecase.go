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
	ErrEstimateAlreadyInCart = errors.New("estimate already in cart")
	ErrEstimateNotOrderable  = errors.New("estimate cannot be ordered in its current status")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrInvalidCartItemID     = errors.New("invalid cart item id")
	ErrCartConflict          = errors.New("cart was modified concurrently, retry")
)

// ICartUseCase manages the caller's single cart.
type ICartUseCase interface {
	Get(ctx context.Context, p auth.Principal) (entities.Cart, error)
	AddItem(ctx context.Context, p auth.Principal, estimateID string) (entities.Cart, error)
	RemoveItem(ctx context.Context, p auth.Principal, itemID string) (entities.Cart, error)
	Clear(ctx context.Context, p auth.Principal) (entities.Cart, error)
}

type CartUseCase struct {
	carts     interfaces.ICartRepository
	estimates interfaces.IEstimateRepository
	now       func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(carts interfaces.ICartRepository, estimates interfaces.IEstimateRepository) *CartUseCase {
	return &CartUseCase{carts: carts, estimates: estimates, now: utcNow}
}

func (u *CartUseCase) Get(ctx context.Context, p auth.Principal) (entities.Cart, error) {
	cart, err := u.carts.GetByUserID(ctx, p.UserID)
	if err != nil {
		return entities.Cart{}, err
	}
	return pricing.RecomputeTotals(cart), nil
}

// AddItem snapshots one of the caller's estimates into the cart.
func (u *CartUseCase) AddItem(ctx context.Context, p auth.Principal, estimateID string) (entities.Cart, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Cart{}, ErrInvalidEstimateID
	}
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Cart{}, err
	}
	if e.ID == "" {
		return entities.Cart{}, ErrEstimateNotFound
	}
	if e.UserID != p.UserID {
		return entities.Cart{}, ErrForbidden
	}
	if e.Status == entities.EstimateStatusRejected || e.Status == entities.EstimateStatusCompleted {
		return entities.Cart{}, ErrEstimateNotOrderable
	}

	cart, err := u.carts.GetByUserID(ctx, p.UserID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.HasEstimate(e.ID) {
		return entities.Cart{}, ErrEstimateAlreadyInCart
	}

	now := u.now()
	cart.Items = append(cart.Items, entities.CartItem{
		ID:             uuid.NewString(),
		EstimateID:     e.ID,
		ContractorID:   e.ContractorID,
		ProjectDetails: e.ProjectDetails,
		Pricing:        e.Pricing,
		Timeline: entities.TimelineSummary{
			TotalHours:     e.Timeline.TotalHours,
			WorkingDays:    e.Timeline.WorkingDays,
			TotalDays:      e.Timeline.TotalDays,
			CompletionDate: e.Timeline.CompletionDate,
		},
		AddedAt: now,
	})
	saved, err := u.save(ctx, cart, now)
	if err != nil {
		return entities.Cart{}, err
	}
	zap.L().Info("[cart][usecase] item added",
		zap.String("user_id", p.UserID), zap.String("estimate_id", e.ID), zap.Int("items", len(saved.Items)))
	return saved, nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, p auth.Principal, itemID string) (entities.Cart, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Cart{}, ErrInvalidCartItemID
	}
	cart, err := u.carts.GetByUserID(ctx, p.UserID)
	if err != nil {
		return entities.Cart{}, err
	}

	kept := make([]entities.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(cart.Items) {
		return entities.Cart{}, ErrCartItemNotFound
	}
	cart.Items = kept
	return u.save(ctx, cart, u.now())
}

func (u *CartUseCase) Clear(ctx context.Context, p auth.Principal) (entities.Cart, error) {
	cart, err := u.carts.GetByUserID(ctx, p.UserID)
	if err != nil {
		return entities.Cart{}, err
	}
	if len(cart.Items) == 0 {
		return pricing.RecomputeTotals(cart), nil
	}
	cart.Items = []entities.CartItem{}
	return u.save(ctx, cart, u.now())
}

func (u *CartUseCase) save(ctx context.Context, cart entities.Cart, now time.Time) (entities.Cart, error) {
	cart = pricing.RecomputeTotals(cart)
	cart.UpdatedAt = now
	saved, err := u.carts.Save(ctx, cart)
	if errors.Is(err, interfaces.ErrCartVersionConflict) {
		zap.L().Warn("[cart][usecase] version conflict", zap.String("user_id", cart.UserID), zap.Int64("version", cart.Version))
		return entities.Cart{}, ErrCartConflict
	}
	if err != nil {
		return entities.Cart{}, err
	}
	return saved, nil
}
