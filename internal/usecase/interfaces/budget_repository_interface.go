package interfaces

import (
	"context"
	"paintmarket/internal/domain/entities"
)

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Budget, error)
}
