package fiber

type FilterRequest struct {
	DateFrom           string   `json:"date_from" example:"2025-01-10 00:00:00"`
	DateTo             string   `json:"date_to" example:"2025-01-11 00:00:00"`
	City               []string `json:"city,omitempty"`
	State              []string `json:"state,omitempty"`
	BapMerchantID      []string `json:"bap_merchant_id,omitempty"`
	BppMerchantID      []string `json:"bpp_merchant_id,omitempty"`
	FlowType           []string `json:"flow_type,omitempty"`
	TripTag            []string `json:"trip_tag,omitempty"`
	VehicleCategory    string   `json:"vehicle_category,omitempty"`
	VehicleSubCategory string   `json:"vehicle_sub_category,omitempty"`
	Granularity        string   `json:"granularity" example:"day"`
}

type SegmentRequest struct {
	Dimension    string   `json:"dimension" example:"city"`
	TopN         int      `json:"top_n" example:"5"`
	CustomValues []string `json:"custom_values,omitempty"`
}

type GridRequest struct {
	Filter     FilterRequest  `json:"filter"`
	Metric     string         `json:"metric" example:"completedRides"`
	Cumulative bool           `json:"cumulative"`
	Inner      SegmentRequest `json:"inner"`
	Middle     SegmentRequest `json:"middle"`
	Outer      SegmentRequest `json:"outer"`
}

type SeriesPointResponse struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

type LineResponse struct {
	Name   string                `json:"name"`
	Points []SeriesPointResponse `json:"points"`
}

type GridCellResponse struct {
	ColumnValue string         `json:"column_value"`
	RowValue    string         `json:"row_value,omitempty"`
	Lines       []LineResponse `json:"lines,omitempty"`
	Error       string         `json:"error,omitempty"`
}

type GridRowResponse struct {
	Label string             `json:"label"`
	Cells []GridCellResponse `json:"cells"`
}

type GridResponse struct {
	Rows      []GridRowResponse `json:"rows"`
	Columns   []string          `json:"columns"`
	LineNames []string          `json:"line_names"`
	NoData    bool              `json:"no_data"`
}

type ChangeResponse struct {
	Absolute float64 `json:"absolute"`
	Percent  float64 `json:"percent"`
}

type KPIResponse struct {
	Label             string                `json:"label"`
	Value             float64               `json:"value"`
	ChangeVsYesterday ChangeResponse        `json:"change_vs_yesterday"`
	ChangeVsLastWeek  ChangeResponse        `json:"change_vs_last_week"`
	TrendSeries       []SeriesPointResponse `json:"trend_series"`
}

type CompareRequest struct {
	Filter   FilterRequest `json:"filter"`
	DateFrom string        `json:"date_from" example:"2025-01-10 00:00:00"`
	DateTo   string        `json:"date_to" example:"2025-01-11 00:00:00"`
}

type CompareResponse struct {
	CurrentFrom  string                    `json:"current_from"`
	CurrentTo    string                    `json:"current_to"`
	PreviousFrom string                    `json:"previous_from"`
	PreviousTo   string                    `json:"previous_to"`
	Current      map[string]float64        `json:"current"`
	Previous     map[string]float64        `json:"previous"`
	Change       map[string]ChangeResponse `json:"change"`
}

type AxisRequest struct {
	Sample []float64 `json:"sample"`
}

type AxisResponse struct {
	Min        float64  `json:"min"`
	Max        float64  `json:"max"`
	TickLabels []string `json:"tick_labels"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"unknown metric"`
}
