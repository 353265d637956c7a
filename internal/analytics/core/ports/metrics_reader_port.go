package ports

import (
	"context"

	"control-center-analytics/internal/analytics/core/domain"
)

// Filter carries the query parameters the metrics backend recognizes.
// DateFrom/DateTo are full local date-times ("2006-01-02 15:04:05") since
// granularity may be hourly.
type Filter struct {
	DateFrom           string
	DateTo             string
	City               []string
	State              []string
	BapMerchantID      []string
	BppMerchantID      []string
	FlowType           []string
	TripTag            []string
	VehicleCategory    string
	VehicleSubCategory string
	Granularity        string // "hour" | "day"
}

// WithDimensionValue returns a copy of the filter narrowed to a single value
// of the given dimension. Categorical dimensions become an equality filter;
// the synthetic run_day dimension instead becomes a one-day date range
// layered over the base filter. Unknown dimensions are rejected upstream by
// usecase validation and leave the filter unchanged here.
func (f Filter) WithDimensionValue(dim, value string) Filter {
	switch dim {
	case domain.DimensionCity:
		f.City = []string{value}
	case domain.DimensionState:
		f.State = []string{value}
	case domain.DimensionFlowType:
		f.FlowType = []string{value}
	case domain.DimensionTripTag:
		f.TripTag = []string{value}
	case domain.DimensionVehicleCategory:
		f.VehicleCategory = value
	case domain.DimensionVehicleSubCategory:
		f.VehicleSubCategory = value
	case domain.DimensionBapMerchant:
		f.BapMerchantID = []string{value}
	case domain.DimensionBppMerchant:
		f.BppMerchantID = []string{value}
	case domain.DimensionRunDay:
		f.DateFrom = value + " 00:00:00"
		f.DateTo = value + " 23:59:59"
	}
	return f
}

// MetricsReaderPort is the engine's view of the external metrics backend.
// Implementations own transport, caching and timeouts; the core only sees
// already-bucketed counters.
type MetricsReaderPort interface {
	// TimeSeries returns one counter bucket per granularity step, ordered by
	// timestamp.
	TimeSeries(ctx context.Context, f Filter) ([]domain.CounterPoint, error)

	// DimensionalSeries returns one row per dimension value per bucket,
	// ordered by timestamp.
	DimensionalSeries(ctx context.Context, f Filter, dimension string) ([]domain.DimensionalPoint, error)

	// Totals returns the summed counters for the whole window.
	Totals(ctx context.Context, f Filter) (domain.Counters, error)
}
