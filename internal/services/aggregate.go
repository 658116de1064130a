package services

import (
	"slices"
	"strings"

	"ecom-dashboard/internal/models"
)

// Aggregate groups filtered records by (time bucket, group value) and derives
// the selected measure per key: sum of orders, sum of revenue, or AOV as
// sum(revenue)/sum(orders) weighted by orders, never a mean of per-record
// AOVs. Output is sorted chronologically by bucket, then by group. Unknown
// grain/group/measure values are rejected up front, even for empty input.
func Aggregate(records []models.TransactionRecord, grain models.Grain, groupBy models.Dimension, measure models.Measure) ([]models.AggregatedPoint, error) {
	if _, err := models.ParseGrain(string(grain)); err != nil {
		return nil, err
	}
	if _, err := models.ParseDimension(string(groupBy)); err != nil {
		return nil, err
	}
	if _, err := models.ParseMeasure(string(measure)); err != nil {
		return nil, err
	}

	type key struct {
		bucket models.Bucket
		group  string
	}
	type sums struct {
		orders  int
		revenue int64
	}

	acc := make(map[key]*sums)
	for _, r := range records {
		bucket, err := models.BucketOf(r.Date, grain)
		if err != nil {
			return nil, err
		}
		k := key{bucket: bucket, group: groupBy.ValueOf(r)}
		s := acc[k]
		if s == nil {
			s = &sums{}
			acc[k] = s
		}
		s.orders += r.Orders
		s.revenue += r.Revenue
	}

	type entry struct {
		key  key
		sums *sums
	}
	entries := make([]entry, 0, len(acc))
	for k, s := range acc {
		entries = append(entries, entry{key: k, sums: s})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := a.key.bucket.Compare(b.key.bucket); c != 0 {
			return c
		}
		return strings.Compare(a.key.group, b.key.group)
	})

	points := make([]models.AggregatedPoint, 0, len(entries))
	for _, e := range entries {
		var value float64
		switch measure {
		case models.MeasureOrders:
			value = float64(e.sums.orders)
		case models.MeasureRevenue:
			value = float64(e.sums.revenue)
		case models.MeasureAOV:
			// Orders are >= 1 per record, so a zero-order key only arises
			// from empty input; the guard keeps the division total.
			if e.sums.orders > 0 {
				value = float64(e.sums.revenue) / float64(e.sums.orders)
			}
		}
		points = append(points, models.AggregatedPoint{
			Time:    e.key.bucket.String(),
			Group:   e.key.group,
			Value:   value,
			Orders:  e.sums.orders,
			Revenue: e.sums.revenue,
		})
	}
	return points, nil
}

// Summarize computes the KPI figures over a filtered record set. An empty set
// yields all zeros, which is a valid renderable state.
func Summarize(records []models.TransactionRecord) models.Summary {
	var orders int
	var revenue int64
	for _, r := range records {
		orders += r.Orders
		revenue += r.Revenue
	}

	var aov float64
	if orders > 0 {
		aov = float64(revenue) / float64(orders)
	}
	return models.Summary{
		Records:      len(records),
		TotalOrders:  orders,
		TotalRevenue: revenue,
		AOV:          aov,
	}
}

// Details returns up to limit most-recent records by date descending, keeping
// generation order within a day, for drill-down beyond chart tooltips.
func Details(records []models.TransactionRecord, limit int) []models.TransactionRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b models.TransactionRecord) int {
		return b.Date.Compare(a.Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
