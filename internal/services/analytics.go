package services

import (
	"log/slog"
	"time"

	"ecom-dashboard/internal/dataset"
	"ecom-dashboard/internal/models"
)

// DetailsLimit caps the drill-down table at the most recent filtered rows.
const DetailsLimit = 200

// Analytics serves every dashboard computation against one seeded dataset.
// The dataset is memoized by the store and immutable, so each interaction is
// a fresh single-pass filter/aggregate with no shared mutable state.
type Analytics struct {
	store  *dataset.Store
	seed   int64
	logger *slog.Logger
}

func NewAnalytics(store *dataset.Store, seed int64) *Analytics {
	return &Analytics{
		store:  store,
		seed:   seed,
		logger: slog.Default(),
	}
}

// Records returns the full immutable dataset.
func (a *Analytics) Records() []models.TransactionRecord {
	return a.store.Dataset(a.seed)
}

// DateRange returns the first and last transaction dates of the dataset.
func (a *Analytics) DateRange() (time.Time, time.Time) {
	records := a.Records()
	if len(records) == 0 {
		return time.Time{}, time.Time{}
	}
	return records[0].Date, records[len(records)-1].Date
}

// DefaultQuery is the initial dashboard state: full date range, all
// categories, weekly revenue grouped by region.
func (a *Analytics) DefaultQuery() Query {
	start, end := a.DateRange()
	return Query{
		Start:    start,
		End:      end,
		Regions:  regionNames(),
		Channels: channelNames(),
		Products: productNames(),
		Measure:  models.MeasureRevenue,
		Grain:    models.GrainWeek,
		GroupBy:  models.DimensionRegion,
	}
}

// Series runs the filter and aggregation stages for a query.
func (a *Analytics) Series(q Query) ([]models.AggregatedPoint, error) {
	return Aggregate(Filter(a.Records(), q), q.Grain, q.GroupBy, q.Measure)
}

// Summary runs the filter stage and derives the KPI figures.
func (a *Analytics) Summary(q Query) models.Summary {
	return Summarize(Filter(a.Records(), q))
}

// Detail returns the drill-down rows for a query, capped at DetailsLimit.
func (a *Analytics) Detail(q Query) []models.TransactionRecord {
	return Details(Filter(a.Records(), q), DetailsLimit)
}

// Snapshot is everything one dashboard render consumes.
type Snapshot struct {
	Summary models.Summary             `json:"summary"`
	Series  []models.AggregatedPoint   `json:"series"`
	Details []models.TransactionRecord `json:"details"`
}

// Run performs one full recomputation pass: filter once, then derive the KPI
// summary, the aggregated series and the details table from that one view.
func (a *Analytics) Run(q Query) (*Snapshot, error) {
	start := time.Now()
	filtered := Filter(a.Records(), q)

	series, err := Aggregate(filtered, q.Grain, q.GroupBy, q.Measure)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Summary: Summarize(filtered),
		Series:  series,
		Details: Details(filtered, DetailsLimit),
	}

	a.logger.Debug("recomputation pass",
		"filtered", len(filtered),
		"points", len(series),
		"duration", time.Since(start))
	return snap, nil
}

// Stats reports dataset figures for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	records := a.Records()
	first, last := a.DateRange()
	return map[string]any{
		"seed":           a.seed,
		"record_count":   len(records),
		"first_date":     first.Format("2006-01-02"),
		"last_date":      last.Format("2006-01-02"),
		"memoized_seeds": a.store.Seeds(),
	}
}

func regionNames() []string {
	names := make([]string, len(models.AllRegions))
	for i, r := range models.AllRegions {
		names[i] = string(r)
	}
	return names
}

func channelNames() []string {
	names := make([]string, len(models.AllChannels))
	for i, c := range models.AllChannels {
		names[i] = string(c)
	}
	return names
}

func productNames() []string {
	names := make([]string, len(models.AllProductTiers))
	for i, p := range models.AllProductTiers {
		names[i] = string(p)
	}
	return names
}
