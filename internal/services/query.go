package services

import (
	"time"

	"ecom-dashboard/internal/models"
)

// Query describes one full recomputation pass: which records to keep and how
// to bucket, group and measure them. Category slices are always explicit: an
// empty slice means the user deselected everything and matches no records;
// there is no implicit select-all fallback.
type Query struct {
	Start    time.Time
	End      time.Time
	Regions  []string
	Channels []string
	Products []string
	Measure  models.Measure
	Grain    models.Grain
	GroupBy  models.Dimension
}

// Filter returns the records satisfying every predicate: date within
// [Start, End] inclusive and each categorical value inside its selected set.
// Output order follows input order; the source slice is never modified.
func Filter(records []models.TransactionRecord, q Query) []models.TransactionRecord {
	regions := toSet(q.Regions)
	channels := toSet(q.Channels)
	products := toSet(q.Products)

	out := make([]models.TransactionRecord, 0, len(records))
	for _, r := range records {
		if r.Date.Before(q.Start) || r.Date.After(q.End) {
			continue
		}
		if !regions[string(r.Region)] || !channels[string(r.Channel)] || !products[string(r.Product)] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
