package rank

import (
	"sort"

	"control-center-analytics/internal/analytics/core/domain"
)

// Score is the weighted volume score used everywhere a dimension value is
// ranked. Completed rides weigh 10x searches: rides are the scarcer,
// higher-signal event.
func Score(c domain.Counters) float64 {
	return c.Searches + c.CompletedRides*10
}

// TopN ranks the distinct dimension values in points by their accumulated
// Score and returns up to n of them, highest first. Ties keep first-seen
// input order. Empty input yields an empty result.
func TopN(points []domain.DimensionalPoint, n int) []string {
	if n <= 0 || len(points) == 0 {
		return nil
	}

	scores := make(map[string]float64, 16)
	var order []string
	for _, p := range points {
		if _, seen := scores[p.DimensionValue]; !seen {
			order = append(order, p.DimensionValue)
		}
		scores[p.DimensionValue] += Score(p.Counters)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// Resolve applies a SegmentSpec to a dimensional series: custom values pass
// through verbatim in caller order and never trigger ranking.
func Resolve(spec domain.SegmentSpec, points []domain.DimensionalPoint) []string {
	if len(spec.CustomValues) > 0 {
		return spec.CustomValues
	}
	return TopN(points, spec.TopN)
}
