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
)

var (
	ErrInvalidPaintInput  = errors.New("invalid paint estimate input")
	ErrInvalidBudgetInput = errors.New("invalid budget input")
	ErrInvalidUserID      = errors.New("invalid user id")
)

type PaintInput struct {
	Room      entities.RoomDimensions
	PaintType entities.PaintType
	Coats     int
}

type BudgetInput struct {
	MinBudget float64
	MaxBudget float64
	Rooms     []entities.RoomDimensions
}

// IBudgetUseCase backs the public paint calculator and the saved budgets.
type IBudgetUseCase interface {
	QuotePaint(ctx context.Context, in PaintInput) (entities.PaintQuote, error)
	Create(ctx context.Context, p auth.Principal, in BudgetInput) (entities.Budget, error)
	ListByUser(ctx context.Context, p auth.Principal, userID string) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
	now  func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, now: utcNow}
}

func (u *BudgetUseCase) QuotePaint(_ context.Context, in PaintInput) (entities.PaintQuote, error) {
	q, err := pricing.QuotePaint(in.Room, in.PaintType, in.Coats)
	if err != nil {
		return entities.PaintQuote{}, fmt.Errorf("%w: %w", ErrInvalidPaintInput, err)
	}
	return q, nil
}

// Create prices the rooms in every paint tier, recommends one for the
// budget and stores the result for the caller.
func (u *BudgetUseCase) Create(ctx context.Context, p auth.Principal, in BudgetInput) (entities.Budget, error) {
	rec, err := pricing.RecommendTier(in.Rooms, in.MinBudget, in.MaxBudget)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("%w: %w", ErrInvalidBudgetInput, err)
	}
	b := entities.Budget{
		ID:              uuid.NewString(),
		UserID:          p.UserID,
		MinBudget:       in.MinBudget,
		MaxBudget:       in.MaxBudget,
		Rooms:           in.Rooms,
		TotalArea:       rec.TotalArea,
		Options:         rec.Options,
		RecommendedTier: rec.RecommendedTier,
		EstimatedCost:   rec.EstimatedCost,
		WithinBudget:    rec.WithinBudget,
		CreatedAt:       u.now(),
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		zap.L().Error("[budget][usecase] create failed", zap.String("user_id", p.UserID), zap.Error(err))
		return entities.Budget{}, err
	}
	zap.L().Info("[budget][usecase] budget saved",
		zap.String("budget_id", created.ID), zap.String("tier", string(created.RecommendedTier)), zap.Bool("within_budget", created.WithinBudget))
	return created, nil
}

func (u *BudgetUseCase) ListByUser(ctx context.Context, p auth.Principal, userID string) ([]entities.Budget, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if userID != p.UserID && !p.IsAdmin() {
		return nil, ErrForbidden
	}
	return u.repo.ListByUserID(ctx, userID)
}
