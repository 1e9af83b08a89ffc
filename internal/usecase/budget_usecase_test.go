package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintmarket/internal/domain/entities"
	mock_interfaces "paintmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBudgetUseCase_QuotePaint(t *testing.T) {
	uc := NewBudgetUseCase(nil)

	q, err := uc.QuotePaint(context.Background(), PaintInput{Room: entities.RoomDimensions{Length: 12, Width: 10, Height: 8}, Coats: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Area != 352 || q.Gallons != 2.1 || q.PaintType != entities.PaintTypeStandard || q.Cost != 84 {
		t.Fatalf("unexpected quote: %+v", q)
	}

	if _, err := uc.QuotePaint(context.Background(), PaintInput{Room: entities.RoomDimensions{Length: 12}}); !errors.Is(err, ErrInvalidPaintInput) {
		t.Fatalf("expected ErrInvalidPaintInput, got %v", err)
	}
}

func TestBudgetUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo)
	uc.now = func() time.Time { return fixedNow }

	t.Run("inverted range", func(t *testing.T) {
		_, err := uc.Create(context.Background(), client, BudgetInput{MinBudget: 200, MaxBudget: 100, Rooms: []entities.RoomDimensions{{Length: 1, Width: 1, Height: 1}}})
		if !errors.Is(err, ErrInvalidBudgetInput) {
			t.Fatalf("expected ErrInvalidBudgetInput, got %v", err)
		}
	})

	t.Run("recommends highest tier under max", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		b, err := uc.Create(context.Background(), client, BudgetInput{MinBudget: 50, MaxBudget: 100, Rooms: []entities.RoomDimensions{{Length: 12, Width: 10, Height: 8}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.UserID != "user-1" || b.RecommendedTier != entities.PaintTypeStandard || b.EstimatedCost != 84 || !b.WithinBudget {
			t.Fatalf("unexpected budget: %+v", b)
		}
		if len(b.Options) != 3 {
			t.Fatalf("expected 3 tier options, got %d", len(b.Options))
		}
	})
}

func TestBudgetUseCase_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo)

	if _, err := uc.ListByUser(context.Background(), client, "user-2"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	repo.EXPECT().ListByUserID(gomock.Any(), "user-2").Return([]entities.Budget{{ID: "b-1"}}, nil)
	got, err := uc.ListByUser(context.Background(), admin, "user-2")
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v err=%v", got, err)
	}
}
