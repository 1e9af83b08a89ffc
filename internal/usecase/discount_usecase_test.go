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

type discountMocks struct {
	repo        *mock_interfaces.MockIDiscountRepository
	cache       *mock_interfaces.MockIDiscountCache
	contractors *mock_interfaces.MockIContractorRepository
}

func newDiscountUseCase(t *testing.T) (*DiscountUseCase, discountMocks) {
	ctrl := gomock.NewController(t)
	m := discountMocks{
		repo:        mock_interfaces.NewMockIDiscountRepository(ctrl),
		cache:       mock_interfaces.NewMockIDiscountCache(ctrl),
		contractors: mock_interfaces.NewMockIContractorRepository(ctrl),
	}
	uc := NewDiscountUseCase(m.repo, m.cache, m.contractors)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func validDiscountInput() DiscountInput {
	return DiscountInput{
		Name:      "Summer",
		Code:      " summer10 ",
		Type:      entities.DiscountTypePercentage,
		Value:     10,
		StartDate: fixedNow,
		EndDate:   fixedNow.Add(30 * 24 * time.Hour),
	}
}

func TestDiscountUseCase_ListActive(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		expired := tenPercentOff("old", false)
		expired.EndDate = fixedNow.Add(-time.Hour)
		m.cache.EXPECT().GetActive(gomock.Any()).Return([]entities.Discount{tenPercentOff("d-1", false), expired}, true, nil)

		ds, err := uc.ListActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ds) != 1 || ds[0].ID != "d-1" {
			t.Fatalf("expected only the current discount, got %+v", ds)
		}
	})

	t.Run("cache miss loads, sorts and fills cache", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		low := tenPercentOff("low", false)
		high := tenPercentOff("high", false)
		high.Priority = 5
		m.cache.EXPECT().GetActive(gomock.Any()).Return(nil, false, nil)
		m.repo.EXPECT().ListActive(gomock.Any()).Return([]entities.Discount{low, high}, nil)
		m.cache.EXPECT().SetActive(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ds []entities.Discount) error {
				if ds[0].ID != "high" {
					t.Fatalf("expected sorted discounts, got %+v", ds)
				}
				return nil
			},
		)

		ds, err := uc.ListActive(context.Background())
		if err != nil || len(ds) != 2 || ds[0].ID != "high" {
			t.Fatalf("unexpected result %+v err=%v", ds, err)
		}
	})

	t.Run("cache failure falls back to repository", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.cache.EXPECT().GetActive(gomock.Any()).Return(nil, false, errors.New("redis down"))
		m.repo.EXPECT().ListActive(gomock.Any()).Return([]entities.Discount{tenPercentOff("d-1", false)}, nil)
		m.cache.EXPECT().SetActive(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		ds, err := uc.ListActive(context.Background())
		if err != nil || len(ds) != 1 {
			t.Fatalf("unexpected result %+v err=%v", ds, err)
		}
	})
}

func TestDiscountUseCase_ValidateCode(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		uc, _ := newDiscountUseCase(t)
		if _, err := uc.ValidateCode(context.Background(), client, CodeCheck{Code: " ", BaseAmount: 100}); !errors.Is(err, ErrInvalidPromoCode) {
			t.Fatalf("expected ErrInvalidPromoCode, got %v", err)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.repo.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.Discount{}, nil)
		if _, err := uc.ValidateCode(context.Background(), client, CodeCheck{Code: "nope", BaseAmount: 100}); !errors.Is(err, ErrDiscountNotFound) {
			t.Fatalf("expected ErrDiscountNotFound, got %v", err)
		}
	})

	t.Run("valid code previews amount", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		d := tenPercentOff("d-1", false)
		d.Code = "SAVE10"
		m.repo.EXPECT().GetByCode(gomock.Any(), "SAVE10").Return(d, nil)

		res, err := uc.ValidateCode(context.Background(), client, CodeCheck{Code: "save10", BaseAmount: 250, Project: smallProject()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Valid || res.Amount != 25 || res.FinalAmount != 225 {
			t.Fatalf("unexpected validation: %+v", res)
		}
	})

	t.Run("per-user cap reached", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		d := tenPercentOff("d-1", false)
		d.Code = "ONCE"
		d.MaxUsagePerUser = 1
		d.UsedBy = []entities.DiscountUsage{{UserID: "user-1", Amount: 5}}
		m.repo.EXPECT().GetByCode(gomock.Any(), "ONCE").Return(d, nil)

		res, err := uc.ValidateCode(context.Background(), client, CodeCheck{Code: "once", BaseAmount: 100, Project: smallProject()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Valid || res.Reason == "" || res.FinalAmount != 100 {
			t.Fatalf("expected invalid result with reason, got %+v", res)
		}
	})

	t.Run("conditions not met", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		d := tenPercentOff("d-1", false)
		d.Code = "BIG"
		d.Conditions.MinRooms = 3
		m.repo.EXPECT().GetByCode(gomock.Any(), "BIG").Return(d, nil)

		res, err := uc.ValidateCode(context.Background(), client, CodeCheck{Code: "big", BaseAmount: 100, Project: smallProject()})
		if err != nil || res.Valid {
			t.Fatalf("expected invalid result, got %+v err=%v", res, err)
		}
	})
}

func TestDiscountUseCase_Create(t *testing.T) {
	t.Run("client cannot create", func(t *testing.T) {
		uc, _ := newDiscountUseCase(t)
		if _, err := uc.Create(context.Background(), client, validDiscountInput()); !errors.Is(err, ErrContractorProfileReq) {
			t.Fatalf("expected ErrContractorProfileReq, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		in := validDiscountInput()
		in.Value = 150
		if _, err := uc.Create(context.Background(), contractor, in); !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("code taken", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		m.repo.EXPECT().GetByCode(gomock.Any(), "SUMMER10").Return(entities.Discount{ID: "x"}, nil)
		if _, err := uc.Create(context.Background(), contractor, validDiscountInput()); !errors.Is(err, ErrDiscountCodeTaken) {
			t.Fatalf("expected ErrDiscountCodeTaken, got %v", err)
		}
	})

	t.Run("contractor owns new discount", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		m.repo.EXPECT().GetByCode(gomock.Any(), "SUMMER10").Return(entities.Discount{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				if d.ID == "" || d.ContractorID != "ctr-1" || d.Code != "SUMMER10" || !d.IsActive || d.UsedBy == nil {
					t.Fatalf("unexpected discount: %+v", d)
				}
				return d, nil
			},
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if _, err := uc.Create(context.Background(), contractor, validDiscountInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin creates global discount", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		in := validDiscountInput()
		in.Code = ""
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				if d.ContractorID != "" {
					t.Fatalf("expected global discount, got %+v", d)
				}
				return d, nil
			},
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if _, err := uc.Create(context.Background(), admin, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDiscountUseCase_UpdateDelete(t *testing.T) {
	owned := tenPercentOff("d-1", false)
	owned.ContractorID = "ctr-1"

	t.Run("other contractor forbidden", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		foreign := owned
		foreign.ContractorID = "ctr-9"
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(foreign, nil)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)

		if err := uc.Delete(context.Background(), contractor, "d-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(owned, nil)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if err := uc.Delete(context.Background(), contractor, "d-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("owner updates", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(owned, nil)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				if d.Name != "Summer" || d.Value != 10 || !d.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected update: %+v", d)
				}
				return d, nil
			},
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if _, err := uc.Update(context.Background(), contractor, "d-1", validDiscountInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing discount", func(t *testing.T) {
		uc, m := newDiscountUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Discount{}, nil)
		if _, err := uc.Update(context.Background(), admin, "d-1", validDiscountInput()); !errors.Is(err, ErrDiscountNotFound) {
			t.Fatalf("expected ErrDiscountNotFound, got %v", err)
		}
	})
}

func TestDiscountUseCase_Analytics(t *testing.T) {
	uc, m := newDiscountUseCase(t)
	a := tenPercentOff("a", false)
	a.CurrentUsageCount = 2
	a.UsedBy = []entities.DiscountUsage{{UserID: "u1", Amount: 10.5}, {UserID: "u2", Amount: 4.25}}
	b := tenPercentOff("b", true)
	b.IsActive = false
	b.CurrentUsageCount = 1
	b.UsedBy = []entities.DiscountUsage{{UserID: "u1", Amount: 5}}
	m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
	m.repo.EXPECT().ListByContractorID(gomock.Any(), "ctr-1").Return([]entities.Discount{a, b}, nil)

	res, err := uc.Analytics(context.Background(), contractor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalDiscounts != 2 || res.ActiveDiscounts != 1 || res.TotalRedemptions != 3 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.TotalDiscount != 19.75 || res.UniqueUsers != 2 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}
