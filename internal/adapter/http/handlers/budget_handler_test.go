package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"paintmarket/internal/adapter/http/handlers/mocks"
	"paintmarket/internal/domain/entities"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBudgetRouter(t *testing.T, p auth.Principal) (*mocks.MockIBudgetUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)
	r := newRouter(p)
	r.POST("/api/estimate", h.EstimatePaint)
	r.POST("/api/budget", h.Create)
	r.GET("/api/budget/:userId", h.ListByUser)
	return uc, r
}

func TestBudgetHandler_EstimatePaint(t *testing.T) {
	t.Run("public quote", func(t *testing.T) {
		uc, r := newBudgetRouter(t, auth.Principal{})
		uc.EXPECT().QuotePaint(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.PaintInput) (entities.PaintQuote, error) {
				if in.PaintType != entities.PaintTypePremium || in.Room.Height != 8 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.PaintQuote{Area: 352, Gallons: 2.1, PaintType: entities.PaintTypePremium, Coats: 2, Cost: 136.5}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/api/estimate", `{"length":12,"width":10,"height":8,"paintType":"Premium","coats":2}`)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"cost":136.5`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing dimensions", func(t *testing.T) {
		_, r := newBudgetRouter(t, auth.Principal{})
		w := doRequest(r, http.MethodPost, "/api/estimate", `{"length":12}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_Budgets(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		uc, r := newBudgetRouter(t, testClient)
		uc.EXPECT().Create(gomock.Any(), testClient, gomock.Any()).Return(entities.Budget{ID: "b-1", RecommendedTier: entities.PaintTypeStandard, WithinBudget: true}, nil)

		w := doRequest(r, http.MethodPost, "/api/budget", `{"minBudget":50,"maxBudget":100,"rooms":[{"length":12,"width":10,"height":8}]}`)
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"recommendedTier":"standard"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		uc, r := newBudgetRouter(t, testClient)
		uc.EXPECT().Create(gomock.Any(), testClient, gomock.Any()).Return(entities.Budget{}, usecase.ErrInvalidBudgetInput)

		w := doRequest(r, http.MethodPost, "/api/budget", `{"minBudget":500,"maxBudget":100,"rooms":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("other user's budgets", func(t *testing.T) {
		uc, r := newBudgetRouter(t, testClient)
		uc.EXPECT().ListByUser(gomock.Any(), testClient, "user-2").Return(nil, usecase.ErrForbidden)

		w := doRequest(r, http.MethodGet, "/api/budget/user-2", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
