package domain

import "time"

// Counters is one time bucket of raw operational counters as returned by the
// metrics backend. All fields are totals for that bucket alone.
type Counters struct {
	Searches            float64
	SearchForQuotes     float64
	QuotesAccepted      float64
	Bookings            float64
	CompletedRides      float64
	CancelledRides      float64
	UserCancellations   float64
	DriverCancellations float64
	Earnings            float64
}

// CounterPoint is a Counters bucket with its timestamp.
type CounterPoint struct {
	Timestamp time.Time
	Counters
}

// DimensionalPoint tags a counter bucket with the categorical value it was
// broken down by (e.g. a city name). Many points share a timestamp across
// different dimension values.
type DimensionalPoint struct {
	DimensionValue string
	CounterPoint
}

// SeriesPoint is a single displayable {timestamp, value} pair.
type SeriesPoint struct {
	Timestamp time.Time
	Value     float64
}

// Line is one inner-segment series inside a grid cell.
type Line struct {
	Name   string
	Points []SeriesPoint
}

// Change is a period-over-period delta for a single metric.
type Change struct {
	Absolute float64
	Percent  float64
}

// Comparison holds current and previous period totals plus per-metric change.
type Comparison struct {
	Current  map[string]float64
	Previous map[string]float64
	Change   map[string]Change
}

// KPI is a headline scalar with its short-term context.
type KPI struct {
	Label             string
	Value             float64
	ChangeVsYesterday Change
	ChangeVsLastWeek  Change
	TrendSeries       []SeriesPoint
}
