package usecase

import (
	"context"
	"fmt"

	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/ports"
	"control-center-analytics/internal/analytics/core/series"
	"control-center-analytics/internal/analytics/core/window"

	"golang.org/x/sync/errgroup"
)

type ComparePeriodsInput struct {
	Filter   ports.Filter
	DateFrom string
	DateTo   string
}

// ComparePeriodsOutput carries the aligned windows alongside the per-metric
// totals and change.
type ComparePeriodsOutput struct {
	Period     window.Period
	Comparison domain.Comparison
}

type ComparePeriodsUseCase struct {
	reader ports.MetricsReaderPort
}

func NewComparePeriodsUseCase(reader ports.MetricsReaderPort) *ComparePeriodsUseCase {
	return &ComparePeriodsUseCase{reader: reader}
}

// Execute compares an arbitrary current window against the equal-duration
// window immediately preceding it. Unparseable or inverted windows reject
// with ErrMalformedWindow before any fetch happens.
func (uc *ComparePeriodsUseCase) Execute(ctx context.Context, in ComparePeriodsInput) (*ComparePeriodsOutput, error) {
	p, err := window.BuildShiftedPeriod(in.DateFrom, in.DateTo)
	if err != nil {
		return nil, err
	}

	var current, previous domain.Counters
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = uc.reader.Totals(gctx, withWindow(in.Filter, window.Window{From: p.CurrentFrom, To: p.CurrentTo}))
		return err
	})
	g.Go(func() (err error) {
		previous, err = uc.reader.Totals(gctx, withWindow(in.Filter, window.Window{From: p.PreviousFrom, To: p.PreviousTo}))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out := &ComparePeriodsOutput{
		Period: p,
		Comparison: domain.Comparison{
			Current:  map[string]float64{},
			Previous: map[string]float64{},
			Change:   map[string]domain.Change{},
		},
	}
	for _, name := range series.MetricNames() {
		m, _ := series.Lookup(name)
		cur := m.Total(current)
		prev := m.Total(previous)
		out.Comparison.Current[name] = cur
		out.Comparison.Previous[name] = prev
		out.Comparison.Change[name] = series.ChangeBetween(cur, prev)
	}
	return out, nil
}
