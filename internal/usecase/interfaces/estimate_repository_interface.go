package interfaces

import (
	"context"
	"paintmarket/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for ProjectEstimate.
//
// Lookups return a zero-value estimate (empty ID) when nothing is found.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.ProjectEstimate) (entities.ProjectEstimate, error)
	GetByID(ctx context.Context, id string) (entities.ProjectEstimate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ProjectEstimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.ProjectEstimate, error)
	Delete(ctx context.Context, id string) error
}
