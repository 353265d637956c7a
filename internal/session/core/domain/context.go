package domain

import "time"

// DashboardContext is one saved set of dashboard selections. Exactly one
// context is active at a time; the active one is loaded at startup and
// switched explicitly, never mutated from arbitrary call sites.
type DashboardContext struct {
	ID              string
	Name            string
	MerchantID      string
	City            string
	VehicleCategory string
	Metric          string
	Cumulative      bool
	TopN            int
	Active          bool
	CreatedAt       time.Time
}
