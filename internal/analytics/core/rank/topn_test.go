package rank_test

import (
	"testing"
	"time"

	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/rank"

	"github.com/google/go-cmp/cmp"
)

func point(value string, searches, rides float64) domain.DimensionalPoint {
	return domain.DimensionalPoint{
		DimensionValue: value,
		CounterPoint: domain.CounterPoint{
			Timestamp: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
			Counters:  domain.Counters{Searches: searches, CompletedRides: rides},
		},
	}
}

// ------------------------------------------------------------
// Ranking order and truncation
// ------------------------------------------------------------

func TestTopN_RanksByWeightedScore(t *testing.T) {
	// B has fewer searches but rides weigh 10x, so B outranks A.
	points := []domain.DimensionalPoint{
		point("A", 100, 0), // score 100
		point("B", 10, 20), // score 210
		point("C", 50, 1),  // score 60
	}

	got := rank.TopN(points, 3)
	want := []string{"B", "A", "C"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestTopN_AccumulatesAcrossBuckets(t *testing.T) {
	points := []domain.DimensionalPoint{
		point("A", 40, 0),
		point("B", 50, 0),
		point("A", 30, 0), // A totals 70
	}

	got := rank.TopN(points, 1)
	if len(got) != 1 || got[0] != "A" {
		t.Fatalf("expected [A], got %v", got)
	}
}

func TestTopN_Truncates(t *testing.T) {
	points := []domain.DimensionalPoint{
		point("A", 100, 0),
		point("B", 80, 0),
		point("C", 50, 0),
		point("D", 10, 0),
	}

	got := rank.TopN(points, 2)
	want := []string{"A", "B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected top 2 (-want +got):\n%s", diff)
	}
}

// ------------------------------------------------------------
// Ties and subset property
// ------------------------------------------------------------

func TestTopN_TiesKeepFirstSeenOrder(t *testing.T) {
	points := []domain.DimensionalPoint{
		point("X", 10, 0),
		point("Y", 10, 0),
		point("Z", 10, 0),
	}

	got := rank.TopN(points, 3)
	want := []string{"X", "Y", "Z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tie order (-want +got):\n%s", diff)
	}
}

func TestTopN_SmallerNIsPrefixOfLargerN(t *testing.T) {
	points := []domain.DimensionalPoint{
		point("A", 100, 2),
		point("B", 80, 5),
		point("C", 50, 0),
		point("D", 10, 9),
	}

	for n := 1; n < 4; n++ {
		smaller := rank.TopN(points, n)
		larger := rank.TopN(points, n+1)
		if diff := cmp.Diff(smaller, larger[:len(smaller)]); diff != "" {
			t.Fatalf("top %d is not a prefix of top %d (-smaller +larger):\n%s", n, n+1, diff)
		}
	}
}

// ------------------------------------------------------------
// Edge cases
// ------------------------------------------------------------

func TestTopN_EmptyInput(t *testing.T) {
	if got := rank.TopN(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestResolve_CustomValuesBypassRanking(t *testing.T) {
	points := []domain.DimensionalPoint{point("A", 100, 0)}
	spec := domain.SegmentSpec{Dimension: domain.DimensionCity, TopN: 1, CustomValues: []string{"Z", "Q"}}

	got := rank.Resolve(spec, points)
	want := []string{"Z", "Q"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected custom values verbatim (-want +got):\n%s", diff)
	}
}
