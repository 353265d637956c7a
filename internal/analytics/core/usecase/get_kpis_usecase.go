package usecase

import (
	"context"
	"fmt"
	"time"

	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/ports"
	"control-center-analytics/internal/analytics/core/series"
	"control-center-analytics/internal/analytics/core/window"

	"golang.org/x/sync/errgroup"
)

// DefaultKPIMetrics are the headline cards shown when the caller does not
// choose its own set.
var DefaultKPIMetrics = []string{
	"searches", "bookings", "completedRides", "earnings",
	"conversionRate", "cancellationRate",
}

type GetKPIsInput struct {
	Filter  ports.Filter
	Metrics []string
	Now     time.Time // zero means time.Now()
}

type GetKPIsUseCase struct {
	reader ports.MetricsReaderPort
}

func NewGetKPIsUseCase(reader ports.MetricsReaderPort) *GetKPIsUseCase {
	return &GetKPIsUseCase{reader: reader}
}

// Execute builds the live-dashboard KPI strip: today's totals with change
// versus yesterday and versus the same day last week, plus today's hourly
// trend series per metric. The three totals and the trend are fetched
// concurrently.
func (uc *GetKPIsUseCase) Execute(ctx context.Context, in GetKPIsInput) ([]domain.KPI, error) {
	names := in.Metrics
	if len(names) == 0 {
		names = DefaultKPIMetrics
	}
	metrics := make([]series.Metric, 0, len(names))
	for _, name := range names {
		m, ok := series.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
		}
		metrics = append(metrics, m)
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	windows := window.BuildFixedWindows(now)

	var (
		today, yesterday, lastWeek domain.Counters
		trend                      []domain.CounterPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		today, err = uc.reader.Totals(gctx, withWindow(in.Filter, windows.Today))
		return err
	})
	g.Go(func() (err error) {
		yesterday, err = uc.reader.Totals(gctx, withWindow(in.Filter, windows.Yesterday))
		return err
	})
	g.Go(func() (err error) {
		lastWeek, err = uc.reader.Totals(gctx, withWindow(in.Filter, windows.SameDayLastWeek))
		return err
	})
	g.Go(func() (err error) {
		f := withWindow(in.Filter, windows.Today)
		f.Granularity = "hour"
		trend, err = uc.reader.TimeSeries(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	kpis := make([]domain.KPI, 0, len(metrics))
	for _, m := range metrics {
		value := m.Total(today)
		kpis = append(kpis, domain.KPI{
			Label:             m.Name,
			Value:             value,
			ChangeVsYesterday: series.ChangeBetween(value, m.Total(yesterday)),
			ChangeVsLastWeek:  series.ChangeBetween(value, m.Total(lastWeek)),
			TrendSeries:       series.Accumulate(trend, m, false),
		})
	}
	return kpis, nil
}

func withWindow(f ports.Filter, w window.Window) ports.Filter {
	f.DateFrom = w.From
	f.DateTo = w.To
	return f
}
