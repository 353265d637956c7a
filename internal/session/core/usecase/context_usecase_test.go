package usecase_test

import (
	"context"
	"errors"
	"testing"

	"control-center-analytics/internal/session/core/domain"
	"control-center-analytics/internal/session/core/usecase"
)

// fakeContextRepo fakes ContextRepositoryPort.
type fakeContextRepo struct {
	InsertFn   func(ctx context.Context, c *domain.DashboardContext) error
	GetFn      func(ctx context.Context) (*domain.DashboardContext, error)
	ActivateFn func(ctx context.Context, id string) (bool, error)
	ListFn     func(ctx context.Context) ([]domain.DashboardContext, error)
	ClearFn    func(ctx context.Context) error

	lastInserted *domain.DashboardContext
	clearCalled  bool
}

func (f *fakeContextRepo) Insert(ctx context.Context, c *domain.DashboardContext) error {
	f.lastInserted = c
	if f.InsertFn != nil {
		return f.InsertFn(ctx, c)
	}
	return nil
}

func (f *fakeContextRepo) GetActive(ctx context.Context) (*domain.DashboardContext, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx)
	}
	return nil, nil
}

func (f *fakeContextRepo) Activate(ctx context.Context, id string) (bool, error) {
	if f.ActivateFn != nil {
		return f.ActivateFn(ctx, id)
	}
	return true, nil
}

func (f *fakeContextRepo) List(ctx context.Context) ([]domain.DashboardContext, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeContextRepo) Clear(ctx context.Context) error {
	f.clearCalled = true
	if f.ClearFn != nil {
		return f.ClearFn(ctx)
	}
	return nil
}

// ------------------------------------------------------------
// SaveContext
// ------------------------------------------------------------

func TestSaveContext_FirstContextBecomesActive(t *testing.T) {
	repo := &fakeContextRepo{}
	uc := usecase.NewContextUseCase(repo)

	saved, err := uc.SaveContext(context.Background(), usecase.SaveContextInput{
		Name:       "Bangalore cabs",
		MerchantID: "m-001",
		Metric:     "completedRides",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !saved.Active {
		t.Fatalf("first saved context should be active")
	}
	if saved.TopN != 5 {
		t.Fatalf("expected default top_n=5, got %d", saved.TopN)
	}
	if repo.lastInserted == nil {
		t.Fatalf("expected Insert to be called")
	}
}

func TestSaveContext_LaterContextsStayInactive(t *testing.T) {
	repo := &fakeContextRepo{
		ListFn: func(ctx context.Context) ([]domain.DashboardContext, error) {
			return []domain.DashboardContext{{ID: "existing"}}, nil
		},
	}
	uc := usecase.NewContextUseCase(repo)

	saved, err := uc.SaveContext(context.Background(), usecase.SaveContextInput{
		Name:       "Chennai autos",
		MerchantID: "m-002",
		TopN:       3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Active {
		t.Fatalf("second context must not steal the active flag")
	}
	if saved.TopN != 3 {
		t.Fatalf("expected top_n preserved, got %d", saved.TopN)
	}
}

func TestSaveContext_Invalid(t *testing.T) {
	uc := usecase.NewContextUseCase(&fakeContextRepo{})

	_, err := uc.SaveContext(context.Background(), usecase.SaveContextInput{Name: "", MerchantID: "m"})
	if !errors.Is(err, usecase.ErrInvalidContext) {
		t.Fatalf("expected ErrInvalidContext, got %v", err)
	}

	_, err = uc.SaveContext(context.Background(), usecase.SaveContextInput{Name: "n", MerchantID: ""})
	if !errors.Is(err, usecase.ErrInvalidContext) {
		t.Fatalf("expected ErrInvalidContext, got %v", err)
	}
}

// ------------------------------------------------------------
// Switch / Clear
// ------------------------------------------------------------

func TestSwitch_UnknownContext(t *testing.T) {
	repo := &fakeContextRepo{
		ActivateFn: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}
	uc := usecase.NewContextUseCase(repo)

	err := uc.Switch(context.Background(), "missing-id")
	if !errors.Is(err, usecase.ErrContextNotFound) {
		t.Fatalf("expected ErrContextNotFound, got %v", err)
	}
}

func TestSwitch_EmptyID(t *testing.T) {
	uc := usecase.NewContextUseCase(&fakeContextRepo{})

	if err := uc.Switch(context.Background(), ""); !errors.Is(err, usecase.ErrInvalidContext) {
		t.Fatalf("expected ErrInvalidContext, got %v", err)
	}
}

func TestClear_DelegatesToRepo(t *testing.T) {
	repo := &fakeContextRepo{}
	uc := usecase.NewContextUseCase(repo)

	if err := uc.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.clearCalled {
		t.Fatalf("expected Clear to be called")
	}
}
