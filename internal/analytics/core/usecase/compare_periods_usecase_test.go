package usecase_test

import (
	"context"
	"errors"
	"testing"

	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/ports"
	"control-center-analytics/internal/analytics/core/usecase"
	"control-center-analytics/internal/analytics/core/window"
)

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestComparePeriods_AlignsAndComputesChange(t *testing.T) {
	reader := &fakeMetricsReader{
		TotalsFn: func(ctx context.Context, f ports.Filter) (domain.Counters, error) {
			if f.DateFrom == "2025-01-10 00:00:00" {
				return domain.Counters{Bookings: 120, CompletedRides: 60, Searches: 600}, nil
			}
			return domain.Counters{Bookings: 100, CompletedRides: 40, Searches: 500}, nil
		},
	}

	uc := usecase.NewComparePeriodsUseCase(reader)

	out, err := uc.Execute(context.Background(), usecase.ComparePeriodsInput{
		DateFrom: "2025-01-10 00:00:00",
		DateTo:   "2025-01-11 00:00:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Period.PreviousFrom != "2025-01-09 00:00:00" || out.Period.PreviousTo != "2025-01-10 00:00:00" {
		t.Fatalf("unexpected previous window: %+v", out.Period)
	}

	if out.Comparison.Current["bookings"] != 120 || out.Comparison.Previous["bookings"] != 100 {
		t.Fatalf("unexpected bookings totals: %+v", out.Comparison)
	}
	ch := out.Comparison.Change["bookings"]
	if ch.Absolute != 20 || ch.Percent != 20 {
		t.Fatalf("unexpected bookings change: %+v", ch)
	}

	// Rate metrics divide summed components per window.
	if out.Comparison.Current["conversionRate"] != 10 {
		t.Fatalf("expected current conversionRate 10, got %v", out.Comparison.Current["conversionRate"])
	}
	if out.Comparison.Previous["conversionRate"] != 8 {
		t.Fatalf("expected previous conversionRate 8, got %v", out.Comparison.Previous["conversionRate"])
	}
}

// ------------------------------------------------------------
// FAILURES
// ------------------------------------------------------------

func TestComparePeriods_MalformedWindowRejectsBeforeFetch(t *testing.T) {
	reader := &fakeMetricsReader{
		TotalsFn: func(ctx context.Context, f ports.Filter) (domain.Counters, error) {
			t.Fatal("no fetch should happen for a malformed window")
			return domain.Counters{}, nil
		},
	}
	uc := usecase.NewComparePeriodsUseCase(reader)

	_, err := uc.Execute(context.Background(), usecase.ComparePeriodsInput{
		DateFrom: "10/01/2025",
		DateTo:   "2025-01-11 00:00:00",
	})
	if !errors.Is(err, window.ErrMalformedWindow) {
		t.Fatalf("expected ErrMalformedWindow, got %v", err)
	}
}

func TestComparePeriods_UpstreamFailure(t *testing.T) {
	reader := &fakeMetricsReader{
		TotalsFn: func(ctx context.Context, f ports.Filter) (domain.Counters, error) {
			return domain.Counters{}, errors.New("backend down")
		},
	}
	uc := usecase.NewComparePeriodsUseCase(reader)

	_, err := uc.Execute(context.Background(), usecase.ComparePeriodsInput{
		DateFrom: "2025-01-10 00:00:00",
		DateTo:   "2025-01-11 00:00:00",
	})
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
