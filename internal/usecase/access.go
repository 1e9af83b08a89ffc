package usecase

import (
	"context"
	"errors"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/domain/pricing"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrForbidden            = errors.New("forbidden")
	ErrContractorNotFound   = errors.New("contractor not found")
	ErrContractorProfileReq = errors.New("contractor profile required")
)

func utcNow() time.Time { return time.Now().UTC() }

// contractorOf resolves the contractor profile of a contractor principal.
// Non-contractors and contractors without a profile get ErrContractorProfileReq.
func contractorOf(ctx context.Context, repo interfaces.IContractorRepository, p auth.Principal) (entities.Contractor, error) {
	if !p.IsContractor() {
		return entities.Contractor{}, ErrContractorProfileReq
	}
	c, err := repo.GetByUserID(ctx, p.UserID)
	if err != nil {
		return entities.Contractor{}, err
	}
	if c.ID == "" {
		return entities.Contractor{}, ErrContractorProfileReq
	}
	return c, nil
}

// isContractorFor reports whether p is the contractor identified by contractorID.
func isContractorFor(ctx context.Context, repo interfaces.IContractorRepository, p auth.Principal, contractorID string) (bool, error) {
	if !p.IsContractor() || contractorID == "" {
		return false, nil
	}
	c, err := contractorOf(ctx, repo, p)
	if errors.Is(err, ErrContractorProfileReq) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return c.ID == contractorID, nil
}

// activeDiscounts serves the active discount listing, through the cache
// when one is configured.
type activeDiscounts struct {
	repo  interfaces.IDiscountRepository
	cache interfaces.IDiscountCache
}

// list returns active discounts inside their validity window, sorted for
// evaluation. fresh bypasses the cache.
func (a activeDiscounts) list(ctx context.Context, now time.Time, fresh bool) ([]entities.Discount, error) {
	if !fresh && a.cache != nil {
		ds, found, err := a.cache.GetActive(ctx)
		if err != nil {
			zap.L().Warn("[discount][usecase] cache read failed", zap.Error(err))
		} else if found {
			return currentlyValid(ds, now), nil
		}
	}

	ds, err := a.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	pricing.SortByPriority(ds)
	if a.cache != nil {
		if err := a.cache.SetActive(ctx, ds); err != nil {
			zap.L().Warn("[discount][usecase] cache write failed", zap.Error(err))
		}
	}
	return currentlyValid(ds, now), nil
}

func (a activeDiscounts) invalidate(ctx context.Context) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Invalidate(ctx); err != nil {
		zap.L().Warn("[discount][usecase] cache invalidate failed", zap.Error(err))
	}
}

func currentlyValid(ds []entities.Discount, now time.Time) []entities.Discount {
	out := make([]entities.Discount, 0, len(ds))
	for _, d := range ds {
		if pricing.IsCurrentlyValid(d, "", now) {
			out = append(out, d)
		}
	}
	return out
}

// forContractor keeps global discounts and those owned by contractorID.
func forContractor(ds []entities.Discount, contractorID string) []entities.Discount {
	out := make([]entities.Discount, 0, len(ds))
	for _, d := range ds {
		if d.ContractorID == "" || d.ContractorID == contractorID {
			out = append(out, d)
		}
	}
	return out
}
