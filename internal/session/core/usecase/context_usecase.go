package usecase

import (
	"context"
	"errors"
	"time"

	"control-center-analytics/internal/session/core/domain"
	"control-center-analytics/internal/session/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidContext  = errors.New("invalid dashboard context")
	ErrContextNotFound = errors.New("dashboard context not found")
)

type ContextUseCase struct {
	repo ports.ContextRepositoryPort
}

func NewContextUseCase(repo ports.ContextRepositoryPort) *ContextUseCase {
	return &ContextUseCase{repo: repo}
}

type SaveContextInput struct {
	Name            string
	MerchantID      string
	City            string
	VehicleCategory string
	Metric          string
	Cumulative      bool
	TopN            int
}

// SaveContext stores a new context under a generated id. The first saved
// context becomes active so a fresh install has a usable state.
func (uc *ContextUseCase) SaveContext(ctx context.Context, in SaveContextInput) (*domain.DashboardContext, error) {
	if in.Name == "" || in.MerchantID == "" {
		return nil, ErrInvalidContext
	}
	if in.TopN <= 0 {
		in.TopN = 5
	}

	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	c := &domain.DashboardContext{
		ID:              uuid.NewString(),
		Name:            in.Name,
		MerchantID:      in.MerchantID,
		City:            in.City,
		VehicleCategory: in.VehicleCategory,
		Metric:          in.Metric,
		Cumulative:      in.Cumulative,
		TopN:            in.TopN,
		Active:          len(existing) == 0,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetActive loads the active context, nil when none is saved.
func (uc *ContextUseCase) GetActive(ctx context.Context) (*domain.DashboardContext, error) {
	return uc.repo.GetActive(ctx)
}

// Switch makes the given context the active one.
func (uc *ContextUseCase) Switch(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidContext
	}
	ok, err := uc.repo.Activate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContextNotFound
	}
	return nil
}

// Clear removes every saved context on logout.
func (uc *ContextUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}
