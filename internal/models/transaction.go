package models

import "time"

// TransactionRecord is one synthetic order-day entry. Records are created once
// by the generator and never mutated; every downstream stage works on views.
type TransactionRecord struct {
	Date    time.Time   `json:"date"`
	Region  Region      `json:"region"`
	Channel Channel     `json:"channel"`
	Product ProductTier `json:"product"`
	Orders  int         `json:"orders"`
	Revenue int64       `json:"revenue"`
	AOV     float64     `json:"aov"`
}

// AggregatedPoint is one (time bucket, group) measurement. Orders and Revenue
// sums are retained alongside Value so tooltips can show all three.
type AggregatedPoint struct {
	Time    string  `json:"time"`
	Group   string  `json:"group"`
	Value   float64 `json:"value"`
	Orders  int     `json:"orders"`
	Revenue int64   `json:"revenue"`
}

// Summary holds the KPI figures for the current filter selection.
type Summary struct {
	Records      int     `json:"records"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue int64   `json:"total_revenue"`
	AOV          float64 `json:"aov"`
}
