package series

import (
	"math"

	"control-center-analytics/internal/analytics/core/domain"
)

// Metric describes how a displayable metric reads off raw counters. Count
// metrics carry a Value accessor; rate metrics carry Numerator/Denominator
// accessors so cumulative series can accumulate the components independently
// before dividing.
type Metric struct {
	Name        string
	Rate        bool
	Value       func(c domain.Counters) float64
	Numerator   func(c domain.Counters) float64
	Denominator func(c domain.Counters) float64
}

// demandBase returns the demand denominator for conversion-style rates.
// Tiered flows report searches; tier-less flows report zero searches and
// only searchForQuotes, so fall back when searches is zero. The backend
// contract does not distinguish the two shapes explicitly; this fallback is
// applied uniformly for every searches-denominator rate.
func demandBase(c domain.Counters) float64 {
	if c.Searches > 0 {
		return c.Searches
	}
	return c.SearchForQuotes
}

var registry = map[string]Metric{
	"searches":            {Name: "searches", Value: func(c domain.Counters) float64 { return c.Searches }},
	"searchForQuotes":     {Name: "searchForQuotes", Value: func(c domain.Counters) float64 { return c.SearchForQuotes }},
	"quotesAccepted":      {Name: "quotesAccepted", Value: func(c domain.Counters) float64 { return c.QuotesAccepted }},
	"bookings":            {Name: "bookings", Value: func(c domain.Counters) float64 { return c.Bookings }},
	"completedRides":      {Name: "completedRides", Value: func(c domain.Counters) float64 { return c.CompletedRides }},
	"cancelledRides":      {Name: "cancelledRides", Value: func(c domain.Counters) float64 { return c.CancelledRides }},
	"userCancellations":   {Name: "userCancellations", Value: func(c domain.Counters) float64 { return c.UserCancellations }},
	"driverCancellations": {Name: "driverCancellations", Value: func(c domain.Counters) float64 { return c.DriverCancellations }},
	"earnings":            {Name: "earnings", Value: func(c domain.Counters) float64 { return c.Earnings }},

	"conversionRate": {
		Name: "conversionRate", Rate: true,
		Numerator:   func(c domain.Counters) float64 { return c.CompletedRides },
		Denominator: demandBase,
	},
	"bookingRate": {
		Name: "bookingRate", Rate: true,
		Numerator:   func(c domain.Counters) float64 { return c.Bookings },
		Denominator: demandBase,
	},
	"quoteAcceptanceRate": {
		Name: "quoteAcceptanceRate", Rate: true,
		Numerator:   func(c domain.Counters) float64 { return c.QuotesAccepted },
		Denominator: func(c domain.Counters) float64 { return c.SearchForQuotes },
	},
	"cancellationRate": {
		Name: "cancellationRate", Rate: true,
		Numerator:   func(c domain.Counters) float64 { return c.CancelledRides },
		Denominator: func(c domain.Counters) float64 { return c.Bookings },
	},
	"userCancellationRate": {
		Name: "userCancellationRate", Rate: true,
		Numerator:   func(c domain.Counters) float64 { return c.UserCancellations },
		Denominator: func(c domain.Counters) float64 { return c.Bookings },
	},
	"driverCancellationRate": {
		Name: "driverCancellationRate", Rate: true,
		Numerator:   func(c domain.Counters) float64 { return c.DriverCancellations },
		Denominator: func(c domain.Counters) float64 { return c.Bookings },
	},
}

// Lookup returns the metric definition for name.
func Lookup(name string) (Metric, bool) {
	m, ok := registry[name]
	return m, ok
}

// MetricNames returns every registered metric name in stable order, count
// metrics first.
func MetricNames() []string {
	return []string{
		"searches", "searchForQuotes", "quotesAccepted", "bookings",
		"completedRides", "cancelledRides", "userCancellations",
		"driverCancellations", "earnings",
		"conversionRate", "bookingRate", "quoteAcceptanceRate",
		"cancellationRate", "userCancellationRate", "driverCancellationRate",
	}
}

// Rate computes num/den as a percentage, 0 when the denominator is zero or
// negative. Never NaN or Inf.
func Rate(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return round2(num / den * 100)
}

// Total evaluates the metric over a whole-window counter total. Rate metrics
// divide the summed components.
func (m Metric) Total(c domain.Counters) float64 {
	if m.Rate {
		return Rate(m.Numerator(c), m.Denominator(c))
	}
	return round2(m.Value(c))
}

// ChangeBetween computes the absolute and percentage change from previous to
// current. Percent is 0 when there is no previous baseline.
func ChangeBetween(current, previous float64) domain.Change {
	ch := domain.Change{Absolute: round2(current - previous)}
	if previous != 0 {
		ch.Percent = round2((current - previous) / previous * 100)
	}
	return ch
}

// round2 rounds to 2 decimal places for display stability.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
