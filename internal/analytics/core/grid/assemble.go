package grid

import (
	"sort"
	"time"

	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/rank"
	"control-center-analytics/internal/analytics/core/series"
)

// CellResult is one fetched combination before assembly: the raw dimensional
// points for the cell's filter, or the fetch error.
type CellResult struct {
	Combination domain.QueryCombination
	Points      []domain.DimensionalPoint
	Err         error
}

// Assemble organizes fetched cell results into the final grid.
//
// The inner (line) segment is re-ranked globally: scores are aggregated for
// every inner value across all cells at once and ranked a single time, so
// every cell displays the same line set and the legend stays meaningful
// across the whole grid. Ranking per cell instead could surface a different
// top set in each cell, defeating visual comparison.
//
// Every line in every cell is aligned to the union of bucket timestamps
// across the grid; buckets a value has no data for count as zero. Rows are
// sorted by label (day-dimension rows sort lexicographically by date
// string); columns keep first-seen combination order, which is the resolved
// middle segment order.
func Assemble(cells []CellResult, inner domain.SegmentSpec, metric series.Metric, cumulative bool) domain.Grid {
	var all []domain.DimensionalPoint
	for _, c := range cells {
		all = append(all, c.Points...)
	}

	lineNames := rank.Resolve(inner, all)
	buckets := sortedBuckets(all)

	g := domain.Grid{
		LineNames: lineNames,
		NoData:    len(cells) == 0 || len(lineNames) == 0,
	}

	rowIndex := map[string]int{}
	colSeen := map[string]bool{}
	for _, c := range cells {
		if !colSeen[c.Combination.ColumnValue] {
			colSeen[c.Combination.ColumnValue] = true
			g.Columns = append(g.Columns, c.Combination.ColumnValue)
		}
		if _, ok := rowIndex[c.Combination.RowValue]; !ok {
			rowIndex[c.Combination.RowValue] = 0
		}
	}

	rowLabels := make([]string, 0, len(rowIndex))
	for label := range rowIndex {
		rowLabels = append(rowLabels, label)
	}
	sort.Strings(rowLabels)
	for i, label := range rowLabels {
		rowIndex[label] = i
		g.Rows = append(g.Rows, domain.GridRow{Label: label})
	}

	for _, c := range cells {
		cell := domain.GridCell{
			ColumnValue: c.Combination.ColumnValue,
			RowValue:    c.Combination.RowValue,
			Err:         c.Err,
		}
		if c.Err == nil {
			cell.Lines = buildLines(c.Points, lineNames, buckets, metric, cumulative)
		}
		i := rowIndex[c.Combination.RowValue]
		g.Rows[i].Cells = append(g.Rows[i].Cells, cell)
	}

	return g
}

// buildLines filters one cell's points down to the global line set and runs
// each line through the accumulator on the shared bucket alignment.
func buildLines(points []domain.DimensionalPoint, lineNames []string, buckets []time.Time, metric series.Metric, cumulative bool) []domain.Line {
	byValue := map[string]map[time.Time]domain.Counters{}
	for _, p := range points {
		m := byValue[p.DimensionValue]
		if m == nil {
			m = map[time.Time]domain.Counters{}
			byValue[p.DimensionValue] = m
		}
		m[p.Timestamp] = p.Counters
	}

	lines := make([]domain.Line, 0, len(lineNames))
	for _, name := range lineNames {
		aligned := make([]domain.CounterPoint, 0, len(buckets))
		for _, ts := range buckets {
			// missing buckets count as zero
			aligned = append(aligned, domain.CounterPoint{Timestamp: ts, Counters: byValue[name][ts]})
		}
		lines = append(lines, domain.Line{
			Name:   name,
			Points: series.Accumulate(aligned, metric, cumulative),
		})
	}
	return lines
}

func sortedBuckets(points []domain.DimensionalPoint) []time.Time {
	seen := map[time.Time]bool{}
	var out []time.Time
	for _, p := range points {
		if !seen[p.Timestamp] {
			seen[p.Timestamp] = true
			out = append(out, p.Timestamp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
