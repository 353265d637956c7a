package domain

// Dimension names understood by the segmentation engine. They match the
// breakdown dimensions the metrics backend accepts, plus the synthetic
// run_day dimension which segments by calendar day instead of a categorical
// filter.
const (
	DimensionNone               = "none"
	DimensionCity               = "city"
	DimensionState              = "state"
	DimensionFlowType           = "flow_type"
	DimensionTripTag            = "trip_tag"
	DimensionVehicleCategory    = "vehicle_category"
	DimensionVehicleSubCategory = "vehicle_sub_category"
	DimensionBapMerchant        = "bap_merchant_id"
	DimensionBppMerchant        = "bpp_merchant_id"
	DimensionRunDay             = "run_day"
)

// ColumnAll is the column value used when a grid has no middle segment.
const ColumnAll = "All"

// SegmentSpec describes how one segmentation axis is resolved: either the
// top N dimension values by volume, or an explicit caller-chosen value set.
// CustomValues, when non-empty, always wins over TopN.
type SegmentSpec struct {
	Dimension    string
	TopN         int
	CustomValues []string
}

// IsNone reports whether the axis is unsegmented.
func (s SegmentSpec) IsNone() bool {
	return s.Dimension == "" || s.Dimension == DimensionNone
}

// KnownDimension reports whether dim is a dimension this engine can segment by.
func KnownDimension(dim string) bool {
	switch dim {
	case DimensionCity, DimensionState, DimensionFlowType, DimensionTripTag,
		DimensionVehicleCategory, DimensionVehicleSubCategory,
		DimensionBapMerchant, DimensionBppMerchant, DimensionRunDay:
		return true
	}
	return false
}

// QueryCombination is one grid cell's worth of filter overrides: the middle
// segment value selecting the column and the outer segment value selecting
// the row. RowValue is empty when the grid has no outer segment; ColumnValue
// is ColumnAll when it has no middle segment.
type QueryCombination struct {
	ColumnValue string
	RowValue    string
}

// GridCell is one cell of an assembled grid. Lines all share the same bucket
// alignment as every other cell in the grid. Err records that cell's fetch
// failure without affecting siblings.
type GridCell struct {
	ColumnValue string
	RowValue    string
	Lines       []Line
	Err         error
}

// GridRow groups the cells of one outer segment value.
type GridRow struct {
	Label string
	Cells []GridCell
}

// Grid is the assembled chart grid: rows are outer segment values (sorted),
// columns are middle segment values in resolved order, and LineNames is the
// single global set of inner segment values every cell displays.
type Grid struct {
	Rows      []GridRow
	Columns   []string
	LineNames []string
	NoData    bool
}
