package grid

import "control-center-analytics/internal/analytics/core/domain"

// Combinations builds the flat query plan for a grid from the resolved
// middle (column) and outer (row) segment values.
//
// No middle segment: a single unsegmented "All" cell. Middle and outer both
// resolved: the full cross product, outer-major. Middle only: one cell per
// column value. Zero resolved values for a non-none segment produce zero
// combinations; downstream renders that as an explicit no-data grid.
func Combinations(middleValues, outerValues []string, middleNone, outerNone bool) []domain.QueryCombination {
	if middleNone {
		return []domain.QueryCombination{{ColumnValue: domain.ColumnAll}}
	}

	if !outerNone && len(outerValues) > 0 {
		combos := make([]domain.QueryCombination, 0, len(outerValues)*len(middleValues))
		for _, row := range outerValues {
			for _, col := range middleValues {
				combos = append(combos, domain.QueryCombination{ColumnValue: col, RowValue: row})
			}
		}
		return combos
	}

	combos := make([]domain.QueryCombination, 0, len(middleValues))
	for _, col := range middleValues {
		combos = append(combos, domain.QueryCombination{ColumnValue: col})
	}
	return combos
}
