package series

import "control-center-analytics/internal/analytics/core/domain"

// Accumulate turns an ordered-by-timestamp bucket series into a displayable
// series for the given metric.
//
// Count metric, periodic: the bucket value unchanged. Cumulative: a running
// sum. Rate metric, periodic: numerator/denominator*100 per bucket.
// Rate metric, cumulative: running numerator and denominator sums across all
// preceding and current buckets, divided at each point. The components are
// accumulated, never the already-computed percentages: averaging percentages
// is meaningless whenever per-bucket denominators vary, which they do for
// traffic with daily and hourly seasonality.
//
// A zero or missing denominator yields 0, never NaN or Inf. All outputs are
// rounded to 2 decimal places.
func Accumulate(points []domain.CounterPoint, m Metric, cumulative bool) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, len(points))

	var runSum, runNum, runDen float64
	for _, p := range points {
		var v float64
		switch {
		case m.Rate && cumulative:
			runNum += m.Numerator(p.Counters)
			runDen += m.Denominator(p.Counters)
			v = Rate(runNum, runDen)
		case m.Rate:
			v = Rate(m.Numerator(p.Counters), m.Denominator(p.Counters))
		case cumulative:
			runSum += m.Value(p.Counters)
			v = round2(runSum)
		default:
			v = round2(m.Value(p.Counters))
		}
		out = append(out, domain.SeriesPoint{Timestamp: p.Timestamp, Value: v})
	}
	return out
}
