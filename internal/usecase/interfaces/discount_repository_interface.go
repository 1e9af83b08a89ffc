package interfaces

import (
	"context"
	"errors"
	"paintmarket/internal/domain/entities"
)

// ErrDiscountUsageCapReached is returned by RecordUsage when the discount's
// maxTotalUsage was reached before the increment could be applied.
var ErrDiscountUsageCapReached = errors.New("discount usage cap reached")

// IDiscountRepository abstracts DynamoDB persistence for Discount.

type IDiscountRepository interface {
	Create(ctx context.Context, d entities.Discount) (entities.Discount, error)
	GetByID(ctx context.Context, id string) (entities.Discount, error)
	GetByCode(ctx context.Context, code string) (entities.Discount, error)
	Update(ctx context.Context, d entities.Discount) (entities.Discount, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]entities.Discount, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.Discount, error)
	// RecordUsage atomically increments the usage counter and appends the
	// audit entry, refusing when the total cap is already reached.
	RecordUsage(ctx context.Context, id string, usage entities.DiscountUsage) error
}

// IDiscountCache caches the public active-discount listing.
type IDiscountCache interface {
	GetActive(ctx context.Context) ([]entities.Discount, bool, error)
	SetActive(ctx context.Context, discounts []entities.Discount) error
	Invalidate(ctx context.Context) error
}
