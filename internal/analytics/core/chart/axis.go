package chart

import (
	"math"
	"strconv"
)

// TickCount is the target number of y-axis intervals.
const TickCount = 5

// NiceDomain computes a "nice" [0, max] axis domain for a data sample. The
// floor is fixed at 0: everything charted here is a count or a rate. An
// empty sample gets [0, 100]; an all-zero (or non-positive) sample gets
// [0, 10]. Otherwise the ceiling is the nice-step multiple covering the
// sample maximum with 15% headroom, so the returned max is always >= the
// sample max.
func NiceDomain(sample []float64) (float64, float64) {
	if len(sample) == 0 {
		return 0, 100
	}

	max := sample[0]
	min := sample[0]
	for _, v := range sample[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	if max <= 0 {
		return 0, 10
	}

	rng := max - min
	if rng == 0 {
		rng = max
	}

	step := niceStep(rng / TickCount)
	return 0, math.Ceil(max*1.15/step) * step
}

// niceStep snaps a rough step to the nearest of {1,2,5,10} x 10^k.
func niceStep(rough float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	residual := rough / mag

	switch {
	case residual <= 1.5:
		return 1 * mag
	case residual <= 3:
		return 2 * mag
	case residual <= 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// TickLabels returns TickCount+1 compacted labels for the [0, max] domain.
func TickLabels(max float64) []string {
	labels := make([]string, 0, TickCount+1)
	step := max / TickCount
	for i := 0; i <= TickCount; i++ {
		labels = append(labels, CompactLabel(step*float64(i)))
	}
	return labels
}

// CompactLabel shortens large tick values with K/M suffixes at the 1000 and
// 1,000,000 thresholds.
func CompactLabel(v float64) string {
	switch {
	case v >= 1_000_000:
		return trimFloat(v/1_000_000) + "M"
	case v >= 1_000:
		return trimFloat(v/1_000) + "K"
	default:
		return trimFloat(v)
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
