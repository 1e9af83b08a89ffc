package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidContractor = errors.New("invalid contractor profile")
	ErrNotContractor     = errors.New("only contractors have a profile")
)

// ContractorInput is the editable part of a contractor profile. Zero rates
// fall back to the calculator defaults.
type ContractorInput struct {
	BusinessName string
	Email        string
	Phone        string
	Location     string
	Services     []string
	HoursPerDay  float64
	WorkSpeed    float64
	HourlyRate   float64
	Available    bool
}

type IContractorUseCase interface {
	List(ctx context.Context) ([]entities.Contractor, error)
	Get(ctx context.Context, id string) (entities.Contractor, error)
	UpsertMine(ctx context.Context, p auth.Principal, in ContractorInput) (entities.Contractor, error)
}

type ContractorUseCase struct {
	repo interfaces.IContractorRepository
	now  func() time.Time
}

var _ IContractorUseCase = (*ContractorUseCase)(nil)

func NewContractorUseCase(repo interfaces.IContractorRepository) *ContractorUseCase {
	return &ContractorUseCase{repo: repo, now: utcNow}
}

func (u *ContractorUseCase) List(ctx context.Context) ([]entities.Contractor, error) {
	return u.repo.List(ctx)
}

func (u *ContractorUseCase) Get(ctx context.Context, id string) (entities.Contractor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contractor{}, ErrInvalidContractorID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contractor{}, err
	}
	if c.ID == "" {
		return entities.Contractor{}, ErrContractorNotFound
	}
	return c, nil
}

// UpsertMine creates or replaces the caller's contractor profile.
func (u *ContractorUseCase) UpsertMine(ctx context.Context, p auth.Principal, in ContractorInput) (entities.Contractor, error) {
	if !p.IsContractor() {
		return entities.Contractor{}, ErrNotContractor
	}
	if strings.TrimSpace(in.BusinessName) == "" || in.HoursPerDay < 0 || in.HoursPerDay > 24 || in.WorkSpeed < 0 || in.HourlyRate < 0 {
		return entities.Contractor{}, ErrInvalidContractor
	}

	c, err := u.repo.GetByUserID(ctx, p.UserID)
	if err != nil {
		return entities.Contractor{}, err
	}
	now := u.now()
	if c.ID == "" {
		c = entities.Contractor{ID: uuid.NewString(), UserID: p.UserID, CreatedAt: now}
	}
	c.BusinessName = strings.TrimSpace(in.BusinessName)
	c.Email = strings.TrimSpace(in.Email)
	if c.Email == "" {
		c.Email = p.Email
	}
	c.Phone = strings.TrimSpace(in.Phone)
	c.Location = strings.TrimSpace(in.Location)
	c.Services = in.Services
	c.HoursPerDay = in.HoursPerDay
	c.WorkSpeed = in.WorkSpeed
	c.HourlyRate = in.HourlyRate
	c.Available = in.Available
	c.UpdatedAt = now

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return entities.Contractor{}, err
	}
	zap.L().Info("[contractor][usecase] profile saved", zap.String("contractor_id", saved.ID), zap.String("user_id", p.UserID))
	return saved, nil
}
