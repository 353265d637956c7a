package postgres

import (
	"context"

	"control-center-analytics/internal/session/core/domain"
	"control-center-analytics/internal/session/core/ports"
)

type ContextRepository struct {
	db DB
}

func NewContextRepository(db DB) *ContextRepository {
	return &ContextRepository{db: db}
}

var _ ports.ContextRepositoryPort = (*ContextRepository)(nil)

const insertContextSQL = `
INSERT INTO dashboard_contexts (
    id,
    name,
    merchant_id,
    city,
    vehicle_category,
    metric,
    cumulative,
    top_n,
    active,
    created_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10
);
`

const selectContextSQL = `
SELECT id, name, merchant_id, city, vehicle_category, metric, cumulative, top_n, active, created_at
FROM dashboard_contexts
`

func (r *ContextRepository) Insert(ctx context.Context, c *domain.DashboardContext) error {
	_, err := r.db.ExecContext(ctx, insertContextSQL,
		c.ID,
		c.Name,
		c.MerchantID,
		c.City,
		c.VehicleCategory,
		c.Metric,
		c.Cumulative,
		c.TopN,
		c.Active,
		c.CreatedAt,
	)
	return err
}

func (r *ContextRepository) GetActive(ctx context.Context) (*domain.DashboardContext, error) {
	rows, err := r.db.QueryContext(ctx, selectContextSQL+`WHERE active LIMIT 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	c, err := scanContext(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ContextRepository) Activate(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dashboard_contexts SET active = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE dashboard_contexts SET active = FALSE WHERE id <> $1`, id)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ContextRepository) List(ctx context.Context) ([]domain.DashboardContext, error) {
	rows, err := r.db.QueryContext(ctx, selectContextSQL+`ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DashboardContext
	for rows.Next() {
		c, err := scanContext(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContextRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dashboard_contexts`)
	return err
}

func scanContext(rows RowScanner) (*domain.DashboardContext, error) {
	var c domain.DashboardContext
	if err := rows.Scan(
		&c.ID,
		&c.Name,
		&c.MerchantID,
		&c.City,
		&c.VehicleCategory,
		&c.Metric,
		&c.Cumulative,
		&c.TopN,
		&c.Active,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
