package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/grid"
	"control-center-analytics/internal/analytics/core/ports"
	"control-center-analytics/internal/analytics/core/rank"
	"control-center-analytics/internal/analytics/core/series"
	"control-center-analytics/internal/analytics/core/window"

	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownMetric       = errors.New("unknown metric")
	ErrUnknownDimension    = errors.New("unknown dimension")
	ErrMissingInnerSegment = errors.New("inner segment dimension is required")
	ErrInvalidTopN         = errors.New("top_n must be positive")
	ErrUpstream            = errors.New("metrics backend request failed")
)

// BuildGridInput describes one chart grid request. Inner is the line-level
// segment, Middle selects columns, Outer selects rows; Middle and Outer may
// be none.
type BuildGridInput struct {
	Filter     ports.Filter
	Metric     string
	Cumulative bool
	Inner      domain.SegmentSpec
	Middle     domain.SegmentSpec
	Outer      domain.SegmentSpec
}

type BuildGridUseCase struct {
	reader ports.MetricsReaderPort
}

func NewBuildGridUseCase(reader ports.MetricsReaderPort) *BuildGridUseCase {
	return &BuildGridUseCase{reader: reader}
}

// Execute runs the full pipeline: resolve segments (rank stage), generate
// the query plan, fetch every combination concurrently, accumulate and
// assemble. A failed cell fetch lands in that cell's Err and never blocks
// or invalidates sibling cells; a failure during the rank stage aborts the
// whole request since no plan can be built without it.
func (uc *BuildGridUseCase) Execute(ctx context.Context, in BuildGridInput) (domain.Grid, error) {
	m, err := uc.validate(in)
	if err != nil {
		return domain.Grid{}, err
	}

	middleValues, err := uc.resolveSegment(ctx, in.Filter, in.Middle)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	outerValues, err := uc.resolveSegment(ctx, in.Filter, in.Outer)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	combos := grid.Combinations(middleValues, outerValues, in.Middle.IsNone(), in.Outer.IsNone())

	cells := make([]grid.CellResult, len(combos))
	g, gctx := errgroup.WithContext(ctx)
	for i, combo := range combos {
		i, combo := i, combo
		g.Go(func() error {
			f := in.Filter
			if combo.ColumnValue != domain.ColumnAll {
				f = f.WithDimensionValue(in.Middle.Dimension, combo.ColumnValue)
			}
			if combo.RowValue != "" {
				f = f.WithDimensionValue(in.Outer.Dimension, combo.RowValue)
			}
			points, ferr := uc.reader.DimensionalSeries(gctx, f, in.Inner.Dimension)
			cells[i] = grid.CellResult{Combination: combo, Points: points, Err: ferr}
			return nil
		})
	}
	_ = g.Wait() // workers record their own errors per cell

	return grid.Assemble(cells, in.Inner, m, in.Cumulative), nil
}

func (uc *BuildGridUseCase) validate(in BuildGridInput) (series.Metric, error) {
	m, ok := series.Lookup(in.Metric)
	if !ok {
		return series.Metric{}, fmt.Errorf("%w: %q", ErrUnknownMetric, in.Metric)
	}

	if in.Inner.IsNone() {
		return series.Metric{}, ErrMissingInnerSegment
	}
	if !domain.KnownDimension(in.Inner.Dimension) || in.Inner.Dimension == domain.DimensionRunDay {
		return series.Metric{}, fmt.Errorf("%w: %q", ErrUnknownDimension, in.Inner.Dimension)
	}

	for _, s := range []domain.SegmentSpec{in.Inner, in.Middle, in.Outer} {
		if s.IsNone() {
			continue
		}
		if !domain.KnownDimension(s.Dimension) {
			return series.Metric{}, fmt.Errorf("%w: %q", ErrUnknownDimension, s.Dimension)
		}
		if len(s.CustomValues) == 0 && s.Dimension != domain.DimensionRunDay && s.TopN <= 0 {
			return series.Metric{}, fmt.Errorf("%w: %q", ErrInvalidTopN, s.Dimension)
		}
	}

	if _, err := window.ParseTimestamp(in.Filter.DateFrom); err != nil {
		return series.Metric{}, err
	}
	if _, err := window.ParseTimestamp(in.Filter.DateTo); err != nil {
		return series.Metric{}, err
	}
	return m, nil
}

// resolveSegment turns a SegmentSpec into its concrete value list. Custom
// values bypass ranking entirely. The synthetic run_day dimension enumerates
// the filter's calendar days instead of fetching a breakdown.
func (uc *BuildGridUseCase) resolveSegment(ctx context.Context, f ports.Filter, spec domain.SegmentSpec) ([]string, error) {
	if spec.IsNone() {
		return nil, nil
	}
	if len(spec.CustomValues) > 0 {
		return spec.CustomValues, nil
	}
	if spec.Dimension == domain.DimensionRunDay {
		return enumerateDays(f.DateFrom, f.DateTo)
	}

	points, err := uc.reader.DimensionalSeries(ctx, f, spec.Dimension)
	if err != nil {
		return nil, err
	}
	return rank.TopN(points, spec.TopN), nil
}

func enumerateDays(fromStr, toStr string) ([]string, error) {
	from, err := window.ParseTimestamp(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := window.ParseTimestamp(toStr)
	if err != nil {
		return nil, err
	}

	y, m, d := from.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, from.Location())

	var days []string
	for ; !day.After(to); day = day.AddDate(0, 0, 1) {
		days = append(days, day.Format("2006-01-02"))
	}
	return days, nil
}
