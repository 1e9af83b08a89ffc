package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"
	mock_interfaces "paintmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCartUseCase(t *testing.T) (*CartUseCase, *mock_interfaces.MockICartRepository, *mock_interfaces.MockIEstimateRepository) {
	ctrl := gomock.NewController(t)
	carts := mock_interfaces.NewMockICartRepository(ctrl)
	estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewCartUseCase(carts, estimates)
	uc.now = func() time.Time { return fixedNow }
	return uc, carts, estimates
}

func pricedEstimate(id string, original, discount float64) entities.ProjectEstimate {
	return entities.ProjectEstimate{
		ID:           id,
		UserID:       "user-1",
		ContractorID: "ctr-1",
		Status:       entities.EstimateStatusDraft,
		Pricing: entities.Pricing{
			OriginalAmount: original,
			TotalDiscount:  discount,
			FinalAmount:    original - discount,
		},
		Timeline: entities.Timeline{TotalHours: 6, WorkingDays: 1, TotalDays: 1},
	}
}

func TestCartUseCase_AddItem(t *testing.T) {
	t.Run("empty estimate id", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		if _, err := uc.AddItem(context.Background(), client, " "); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("estimate of another user", func(t *testing.T) {
		uc, _, estimates := newCartUseCase(t)
		e := pricedEstimate("est-1", 100, 0)
		e.UserID = "user-2"
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

		if _, err := uc.AddItem(context.Background(), client, "est-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("rejected estimate", func(t *testing.T) {
		uc, _, estimates := newCartUseCase(t)
		e := pricedEstimate("est-1", 100, 0)
		e.Status = entities.EstimateStatusRejected
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

		if _, err := uc.AddItem(context.Background(), client, "est-1"); !errors.Is(err, ErrEstimateNotOrderable) {
			t.Fatalf("expected ErrEstimateNotOrderable, got %v", err)
		}
	})

	t.Run("duplicate estimate", func(t *testing.T) {
		uc, carts, estimates := newCartUseCase(t)
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(pricedEstimate("est-1", 100, 0), nil)
		carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1", Items: []entities.CartItem{{ID: "i-1", EstimateID: "est-1"}}}, nil)

		if _, err := uc.AddItem(context.Background(), client, "est-1"); !errors.Is(err, ErrEstimateAlreadyInCart) {
			t.Fatalf("expected ErrEstimateAlreadyInCart, got %v", err)
		}
	})

	t.Run("adds snapshot and recomputes totals", func(t *testing.T) {
		uc, carts, estimates := newCartUseCase(t)
		existing := entities.CartItem{ID: "i-1", EstimateID: "est-0", Pricing: entities.Pricing{OriginalAmount: 200, TotalDiscount: 20, FinalAmount: 180}}
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(pricedEstimate("est-1", 100, 10), nil)
		carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1", Items: []entities.CartItem{existing}, Version: 3}, nil)
		carts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if c.Version != 3 {
					t.Fatalf("expected version read from store, got %d", c.Version)
				}
				if len(c.Items) != 2 || c.Items[1].EstimateID != "est-1" || c.Items[1].Timeline.TotalHours != 6 {
					t.Fatalf("unexpected items: %+v", c.Items)
				}
				c.Version++
				return c, nil
			},
		)

		cart, err := uc.AddItem(context.Background(), client, "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.TotalAmount != 300 || cart.TotalDiscount != 30 || cart.FinalAmount != 270 {
			t.Fatalf("totals do not match items: %+v", cart)
		}
	})

	t.Run("concurrent write", func(t *testing.T) {
		uc, carts, estimates := newCartUseCase(t)
		estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(pricedEstimate("est-1", 100, 0), nil)
		carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1"}, nil)
		carts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Cart{}, interfaces.ErrCartVersionConflict)

		if _, err := uc.AddItem(context.Background(), client, "est-1"); !errors.Is(err, ErrCartConflict) {
			t.Fatalf("expected ErrCartConflict, got %v", err)
		}
	})
}

func TestCartUseCase_RemoveAndClear(t *testing.T) {
	items := []entities.CartItem{
		{ID: "i-1", Pricing: entities.Pricing{OriginalAmount: 100, FinalAmount: 100}},
		{ID: "i-2", Pricing: entities.Pricing{OriginalAmount: 50, TotalDiscount: 5, FinalAmount: 45}},
	}

	t.Run("remove unknown item", func(t *testing.T) {
		uc, carts, _ := newCartUseCase(t)
		carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1", Items: items}, nil)

		if _, err := uc.RemoveItem(context.Background(), client, "nope"); !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("remove item", func(t *testing.T) {
		uc, carts, _ := newCartUseCase(t)
		carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1", Items: items, Version: 1}, nil)
		carts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) { return c, nil },
		)

		cart, err := uc.RemoveItem(context.Background(), client, "i-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.TotalAmount != 50 || cart.TotalDiscount != 5 || cart.FinalAmount != 45 {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})

	t.Run("clear", func(t *testing.T) {
		uc, carts, _ := newCartUseCase(t)
		carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1", Items: items, Version: 1}, nil)
		carts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) { return c, nil },
		)

		cart, err := uc.Clear(context.Background(), client)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 || cart.TotalAmount != 0 || cart.FinalAmount != 0 {
			t.Fatalf("expected empty cart, got %+v", cart)
		}
	})

	t.Run("clear empty cart does not write", func(t *testing.T) {
		uc, carts, _ := newCartUseCase(t)
		carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1"}, nil)

		if _, err := uc.Clear(context.Background(), client); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
