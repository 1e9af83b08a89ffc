package interfaces

import (
	"context"
	"paintmarket/internal/domain/entities"
)

// IContractorRepository abstracts DynamoDB persistence for Contractor.

type IContractorRepository interface {
	GetByID(ctx context.Context, id string) (entities.Contractor, error)
	GetByUserID(ctx context.Context, userID string) (entities.Contractor, error)
	List(ctx context.Context) ([]entities.Contractor, error)
	Save(ctx context.Context, c entities.Contractor) (entities.Contractor, error)
}
