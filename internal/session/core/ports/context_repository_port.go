package ports

import (
	"context"

	"control-center-analytics/internal/session/core/domain"
)

type ContextRepositoryPort interface {
	Insert(ctx context.Context, c *domain.DashboardContext) error

	// GetActive returns nil without error when no context is active.
	GetActive(ctx context.Context) (*domain.DashboardContext, error)

	// Activate marks the given context active and deactivates the rest.
	// activated = false means the id is unknown.
	Activate(ctx context.Context, id string) (activated bool, err error)

	List(ctx context.Context) ([]domain.DashboardContext, error)

	// Clear removes every saved context (logout).
	Clear(ctx context.Context) error
}
