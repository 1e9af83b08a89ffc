package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase/interfaces"
	mock_interfaces "paintmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	fixedNow   = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	client     = auth.Principal{UserID: "user-1", Email: "client@example.com", Role: auth.RoleClient}
	contractor = auth.Principal{UserID: "user-c", Email: "pro@example.com", Role: auth.RoleContractor}
	admin      = auth.Principal{UserID: "user-a", Role: auth.RoleAdmin}
)

func smallProject() entities.ProjectDetails {
	return entities.ProjectDetails{
		ProjectType:   entities.ProjectTypeInterior,
		NumberOfRooms: 1,
		RoomSize:      120,
		WallCondition: entities.WallConditionSmooth,
		Coats:         2,
	}
}

func availableContractor() entities.Contractor {
	return entities.Contractor{ID: "ctr-1", UserID: "user-c", HoursPerDay: 8, WorkSpeed: 40, HourlyRate: 50, Available: true}
}

func tenPercentOff(id string, stackable bool) entities.Discount {
	return entities.Discount{
		ID:        id,
		Name:      "Spring " + id,
		Type:      entities.DiscountTypePercentage,
		Value:     10,
		StartDate: fixedNow.Add(-24 * time.Hour),
		EndDate:   fixedNow.Add(24 * time.Hour),
		IsActive:  true,
		Stackable: stackable,
	}
}

type timelineMocks struct {
	estimates   *mock_interfaces.MockIEstimateRepository
	contractors *mock_interfaces.MockIContractorRepository
	discounts   *mock_interfaces.MockIDiscountRepository
	carts       *mock_interfaces.MockICartRepository
}

func newTimelineUseCase(t *testing.T) (*TimelineUseCase, timelineMocks) {
	ctrl := gomock.NewController(t)
	m := timelineMocks{
		estimates:   mock_interfaces.NewMockIEstimateRepository(ctrl),
		contractors: mock_interfaces.NewMockIContractorRepository(ctrl),
		discounts:   mock_interfaces.NewMockIDiscountRepository(ctrl),
		carts:       mock_interfaces.NewMockICartRepository(ctrl),
	}
	uc := NewTimelineUseCase(m.estimates, m.contractors, m.discounts, nil, m.carts)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestTimelineUseCase_Calculate(t *testing.T) {
	t.Run("missing contractor id", func(t *testing.T) {
		uc := NewTimelineUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Calculate(context.Background(), client, EstimateRequest{Project: smallProject()})
		if !errors.Is(err, ErrInvalidContractorID) {
			t.Fatalf("expected ErrInvalidContractorID, got %v", err)
		}
	})

	t.Run("invalid project", func(t *testing.T) {
		uc := NewTimelineUseCase(nil, nil, nil, nil, nil)
		p := smallProject()
		p.NumberOfRooms = 0
		_, err := uc.Calculate(context.Background(), client, EstimateRequest{ContractorID: "ctr-1", Project: p})
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("contractor not found", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(entities.Contractor{}, nil)
		m.discounts.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		_, err := uc.Calculate(context.Background(), client, EstimateRequest{ContractorID: "ctr-1", Project: smallProject()})
		if !errors.Is(err, ErrContractorNotFound) {
			t.Fatalf("expected ErrContractorNotFound, got %v", err)
		}
	})

	t.Run("contractor unavailable", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		c := availableContractor()
		c.Available = false
		m.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(c, nil)
		m.discounts.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		_, err := uc.Calculate(context.Background(), client, EstimateRequest{ContractorID: "ctr-1", Project: smallProject()})
		if !errors.Is(err, ErrContractorUnavailable) {
			t.Fatalf("expected ErrContractorUnavailable, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(entities.Contractor{}, errors.New("db")).AnyTimes()
		m.discounts.EXPECT().ListActive(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := uc.Calculate(context.Background(), client, EstimateRequest{ContractorID: "ctr-1", Project: smallProject()})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("prices project and previews discounts without recording usage", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		other := tenPercentOff("other-contractor", false)
		other.ContractorID = "ctr-2"
		m.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(availableContractor(), nil)
		m.discounts.EXPECT().ListActive(gomock.Any()).Return([]entities.Discount{tenPercentOff("d-1", false), other}, nil)

		q, err := uc.Calculate(context.Background(), client, EstimateRequest{ContractorID: " ctr-1 ", Project: smallProject()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Timeline.TotalHours != 6 || q.Timeline.WorkingDays != 1 {
			t.Fatalf("unexpected timeline: %+v", q.Timeline)
		}
		if q.Cost.TotalCost != 396 {
			t.Fatalf("expected total cost 396, got %v", q.Cost.TotalCost)
		}
		if q.Pricing.TotalDiscount != 39.6 || q.Pricing.FinalAmount != 356.4 {
			t.Fatalf("unexpected pricing: %+v", q.Pricing)
		}
		if len(q.Pricing.AppliedDiscounts) != 1 || q.Pricing.AppliedDiscounts[0].DiscountID != "d-1" {
			t.Fatalf("expected only the global discount, got %+v", q.Pricing.AppliedDiscounts)
		}
		if !q.Timeline.StartDate.Equal(fixedNow) {
			t.Fatalf("expected start date to default to now, got %v", q.Timeline.StartDate)
		}
	})
}

func TestTimelineUseCase_Save(t *testing.T) {
	t.Run("records usage and stores draft", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(availableContractor(), nil)
		m.discounts.EXPECT().ListActive(gomock.Any()).Return([]entities.Discount{tenPercentOff("d-1", false)}, nil)
		m.discounts.EXPECT().RecordUsage(gomock.Any(), "d-1", entities.DiscountUsage{UserID: "user-1", Amount: 39.6, Timestamp: fixedNow}).Return(nil)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProjectEstimate{})).DoAndReturn(
			func(_ context.Context, e entities.ProjectEstimate) (entities.ProjectEstimate, error) {
				if e.ID == "" || e.UserID != "user-1" || e.ContractorID != "ctr-1" || e.Status != entities.EstimateStatusDraft {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Pricing.FinalAmount != 356.4 {
					t.Fatalf("expected discounted price, got %+v", e.Pricing)
				}
				return e, nil
			},
		)

		if _, err := uc.Save(context.Background(), client, EstimateRequest{ContractorID: "ctr-1", Project: smallProject()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("capped discount is dropped and the rest re-evaluated", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		primary := tenPercentOff("primary", false)
		primary.Priority = 10
		fallback := tenPercentOff("fallback", false)
		fallback.Value = 5
		m.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(availableContractor(), nil)
		m.discounts.EXPECT().ListActive(gomock.Any()).Return([]entities.Discount{fallback, primary}, nil)
		gomock.InOrder(
			m.discounts.EXPECT().RecordUsage(gomock.Any(), "primary", gomock.Any()).Return(interfaces.ErrDiscountUsageCapReached),
			m.discounts.EXPECT().RecordUsage(gomock.Any(), "fallback", gomock.Any()).Return(nil),
		)
		m.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ProjectEstimate) (entities.ProjectEstimate, error) { return e, nil },
		)

		e, err := uc.Save(context.Background(), client, EstimateRequest{ContractorID: "ctr-1", Project: smallProject()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(e.Pricing.AppliedDiscounts) != 1 || e.Pricing.AppliedDiscounts[0].DiscountID != "fallback" {
			t.Fatalf("expected fallback discount, got %+v", e.Pricing.AppliedDiscounts)
		}
		if e.Pricing.TotalDiscount != 19.8 {
			t.Fatalf("expected 5%% of 396, got %v", e.Pricing.TotalDiscount)
		}
	})

	t.Run("usage error aborts save", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.contractors.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(availableContractor(), nil)
		m.discounts.EXPECT().ListActive(gomock.Any()).Return([]entities.Discount{tenPercentOff("d-1", false)}, nil)
		m.discounts.EXPECT().RecordUsage(gomock.Any(), "d-1", gomock.Any()).Return(errors.New("db"))

		_, err := uc.Save(context.Background(), client, EstimateRequest{ContractorID: "ctr-1", Project: smallProject()})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTimelineUseCase_Get(t *testing.T) {
	est := entities.ProjectEstimate{ID: "est-1", UserID: "user-1", ContractorID: "ctr-1", Status: entities.EstimateStatusDraft}

	t.Run("not found", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.ProjectEstimate{}, nil)
		if _, err := uc.Get(context.Background(), client, "est-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("owner", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		if _, err := uc.Get(context.Background(), client, "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("named contractor", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		if _, err := uc.Get(context.Background(), contractor, "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stranger", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		stranger := auth.Principal{UserID: "user-2", Role: auth.RoleClient}
		if _, err := uc.Get(context.Background(), stranger, "est-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestTimelineUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewTimelineUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), client, "est-1", "bogus"); !errors.Is(err, ErrInvalidEstimateStatus) {
			t.Fatalf("expected ErrInvalidEstimateStatus, got %v", err)
		}
	})

	t.Run("owner sends draft", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.ProjectEstimate{ID: "est-1", UserID: "user-1", Status: entities.EstimateStatusDraft}, nil)
		m.estimates.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusSent).Return(entities.ProjectEstimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)

		res, err := uc.UpdateStatus(context.Background(), client, "est-1", entities.EstimateStatusSent)
		if err != nil || res.Status != entities.EstimateStatusSent {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("owner cannot approve", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.ProjectEstimate{ID: "est-1", UserID: "user-1", ContractorID: "ctr-1", Status: entities.EstimateStatusSent}, nil)

		if _, err := uc.UpdateStatus(context.Background(), client, "est-1", entities.EstimateStatusApproved); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("contractor approves sent estimate", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.ProjectEstimate{ID: "est-1", UserID: "user-1", ContractorID: "ctr-1", Status: entities.EstimateStatusSent}, nil)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		m.estimates.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusApproved).Return(entities.ProjectEstimate{ID: "est-1", Status: entities.EstimateStatusApproved}, nil)

		if _, err := uc.UpdateStatus(context.Background(), contractor, "est-1", entities.EstimateStatusApproved); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transition not allowed", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.ProjectEstimate{ID: "est-1", UserID: "user-1", Status: entities.EstimateStatusDraft}, nil)

		if _, err := uc.UpdateStatus(context.Background(), admin, "est-1", entities.EstimateStatusCompleted); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestTimelineUseCase_Delete(t *testing.T) {
	est := entities.ProjectEstimate{ID: "est-1", UserID: "user-1"}

	t.Run("refused while in cart", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		m.carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1", Items: []entities.CartItem{{ID: "i-1", EstimateID: "est-1"}}}, nil)

		if err := uc.Delete(context.Background(), client, "est-1"); !errors.Is(err, ErrEstimateInCart) {
			t.Fatalf("expected ErrEstimateInCart, got %v", err)
		}
	})

	t.Run("deletes", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		m.carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1"}, nil)
		m.estimates.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

		if err := uc.Delete(context.Background(), client, "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		uc, m := newTimelineUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)

		if err := uc.Delete(context.Background(), contractor, "est-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
