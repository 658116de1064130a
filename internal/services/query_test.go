package services

import (
	"testing"
	"time"

	"ecom-dashboard/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(d time.Time, region models.Region, channel models.Channel, tier models.ProductTier, orders int, revenue int64) models.TransactionRecord {
	return models.TransactionRecord{
		Date:    d,
		Region:  region,
		Channel: channel,
		Product: tier,
		Orders:  orders,
		Revenue: revenue,
		AOV:     float64(revenue) / float64(orders),
	}
}

func allSelectedQuery(start, end time.Time) Query {
	return Query{
		Start:    start,
		End:      end,
		Regions:  []string{"Jakarta", "West Java", "Central Java", "East Java", "Bali", "Sumatra"},
		Channels: []string{"Organic", "Ads", "Affiliate", "Referral"},
		Products: []string{"Basic", "Standard", "Premium"},
	}
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	records := []models.TransactionRecord{
		record(day(2024, time.March, 1), models.RegionBali, models.ChannelAds, models.TierBasic, 1, 50_000),
		record(day(2024, time.March, 2), models.RegionBali, models.ChannelAds, models.TierBasic, 1, 50_000),
		record(day(2024, time.March, 3), models.RegionBali, models.ChannelAds, models.TierBasic, 1, 50_000),
		record(day(2024, time.March, 4), models.RegionBali, models.ChannelAds, models.TierBasic, 1, 50_000),
	}

	q := allSelectedQuery(day(2024, time.March, 2), day(2024, time.March, 3))
	got := Filter(records, q)

	if len(got) != 2 {
		t.Fatalf("Filter() kept %d records, want 2", len(got))
	}
	if !got[0].Date.Equal(day(2024, time.March, 2)) || !got[1].Date.Equal(day(2024, time.March, 3)) {
		t.Error("Filter() should keep both boundary dates inclusively")
	}
}

func TestFilter_EachPredicate(t *testing.T) {
	base := record(day(2024, time.June, 1), models.RegionJakarta, models.ChannelOrganic, models.TierStandard, 2, 200_000)

	tests := []struct {
		name   string
		mutate func(*Query)
		want   int
	}{
		{"all match", func(q *Query) {}, 1},
		{"date outside", func(q *Query) { q.Start = day(2024, time.July, 1); q.End = day(2024, time.July, 31) }, 0},
		{"region excluded", func(q *Query) { q.Regions = []string{"Bali"} }, 0},
		{"channel excluded", func(q *Query) { q.Channels = []string{"Ads"} }, 0},
		{"product excluded", func(q *Query) { q.Products = []string{"Premium"} }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := allSelectedQuery(day(2024, time.June, 1), day(2024, time.June, 30))
			tt.mutate(&q)

			if got := Filter([]models.TransactionRecord{base}, q); len(got) != tt.want {
				t.Errorf("Filter() kept %d records, want %d", len(got), tt.want)
			}
		})
	}
}

// An explicitly emptied selection matches nothing; there is no select-all
// fallback for an empty list.
func TestFilter_EmptySelectionMatchesNothing(t *testing.T) {
	records := []models.TransactionRecord{
		record(day(2024, time.June, 1), models.RegionJakarta, models.ChannelOrganic, models.TierBasic, 1, 40_000),
	}

	for _, dim := range []string{"regions", "channels", "products"} {
		t.Run(dim, func(t *testing.T) {
			q := allSelectedQuery(day(2024, time.January, 1), day(2024, time.December, 31))
			switch dim {
			case "regions":
				q.Regions = []string{}
			case "channels":
				q.Channels = []string{}
			case "products":
				q.Products = []string{}
			}

			if got := Filter(records, q); len(got) != 0 {
				t.Errorf("Filter() with empty %s selection kept %d records, want 0", dim, len(got))
			}
		})
	}
}

func TestFilter_PreservesOrderAndSource(t *testing.T) {
	records := []models.TransactionRecord{
		record(day(2024, time.June, 3), models.RegionBali, models.ChannelAds, models.TierBasic, 1, 40_000),
		record(day(2024, time.June, 1), models.RegionJakarta, models.ChannelOrganic, models.TierBasic, 1, 40_000),
		record(day(2024, time.June, 2), models.RegionSumatra, models.ChannelReferral, models.TierBasic, 1, 40_000),
	}

	q := allSelectedQuery(day(2024, time.June, 1), day(2024, time.June, 30))
	got := Filter(records, q)

	if len(got) != 3 {
		t.Fatalf("Filter() kept %d records, want 3", len(got))
	}
	for i := range got {
		if !got[i].Date.Equal(records[i].Date) {
			t.Fatal("Filter() must preserve input order")
		}
	}

	// Filtering returns a fresh view; the source stays intact.
	got[0].Orders = 999
	if records[0].Orders == 999 {
		t.Error("Filter() output must not alias the source records")
	}
}
