package dataset

import (
	"math"
	"reflect"
	"testing"

	"ecom-dashboard/internal/models"
)

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(DefaultSeed, DefaultStart, DefaultDays)
	second := Generate(DefaultSeed, DefaultStart, DefaultDays)

	if len(first) == 0 {
		t.Fatal("Generate() returned no records")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Generate() with the same seed should yield identical record collections")
	}
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	a := Generate(1, DefaultStart, 30)
	b := Generate(2, DefaultStart, 30)

	if reflect.DeepEqual(a, b) {
		t.Error("Generate() with different seeds should yield different datasets")
	}
}

func TestGenerate_RecordInvariants(t *testing.T) {
	records := Generate(DefaultSeed, DefaultStart, DefaultDays)

	end := DefaultStart.AddDate(0, 0, DefaultDays-1)
	regions := make(map[models.Region]bool)
	channels := make(map[models.Channel]bool)
	tiers := make(map[models.ProductTier]bool)

	for i, r := range records {
		if r.Orders < 1 {
			t.Fatalf("record %d: orders = %d, want >= 1", i, r.Orders)
		}
		if r.Revenue <= 0 {
			t.Fatalf("record %d: revenue = %d, want > 0", i, r.Revenue)
		}
		if r.Date.Before(DefaultStart) || r.Date.After(end) {
			t.Fatalf("record %d: date %v outside [%v, %v]", i, r.Date, DefaultStart, end)
		}

		// aov must always equal revenue/orders, never drift.
		if want := float64(r.Revenue) / float64(r.Orders); math.Abs(r.AOV-want) > 1e-9 {
			t.Fatalf("record %d: aov = %v, want %v", i, r.AOV, want)
		}

		// revenue = orders * unit price with the price inside the tier band.
		if r.Revenue%int64(r.Orders) != 0 {
			t.Fatalf("record %d: revenue %d not divisible by orders %d", i, r.Revenue, r.Orders)
		}
		price := r.Revenue / int64(r.Orders)
		band, ok := tierPrices[r.Product]
		if !ok {
			t.Fatalf("record %d: unknown product tier %q", i, r.Product)
		}
		if price < band.lo || price > band.hi {
			t.Fatalf("record %d: price %d outside %s band [%d, %d]", i, price, r.Product, band.lo, band.hi)
		}

		regions[r.Region] = true
		channels[r.Channel] = true
		tiers[r.Product] = true
	}

	// A full year at 12+ transactions a day covers every category.
	if len(regions) != len(models.AllRegions) {
		t.Errorf("saw %d regions, want %d", len(regions), len(models.AllRegions))
	}
	if len(channels) != len(models.AllChannels) {
		t.Errorf("saw %d channels, want %d", len(channels), len(models.AllChannels))
	}
	if len(tiers) != len(models.AllProductTiers) {
		t.Errorf("saw %d product tiers, want %d", len(tiers), len(models.AllProductTiers))
	}
}

func TestGenerate_DailyTransactionCounts(t *testing.T) {
	records := Generate(DefaultSeed, DefaultStart, DefaultDays)

	perDay := make(map[string]int)
	for _, r := range records {
		perDay[r.Date.Format("2006-01-02")]++
	}

	if len(perDay) != DefaultDays {
		t.Errorf("dataset covers %d days, want %d", len(perDay), DefaultDays)
	}
	for day, count := range perDay {
		if count < 12 || count > 30 {
			t.Errorf("day %s has %d transactions, want [12, 30]", day, count)
		}
	}
}

func TestGenerate_TierWeights(t *testing.T) {
	records := Generate(DefaultSeed, DefaultStart, DefaultDays)

	counts := make(map[models.ProductTier]int)
	for _, r := range records {
		counts[r.Product]++
	}

	// Weighted 55/32/13, so the ordering is stable over a year of draws.
	if counts[models.TierBasic] <= counts[models.TierStandard] {
		t.Errorf("Basic (%d) should outnumber Standard (%d)", counts[models.TierBasic], counts[models.TierStandard])
	}
	if counts[models.TierStandard] <= counts[models.TierPremium] {
		t.Errorf("Standard (%d) should outnumber Premium (%d)", counts[models.TierStandard], counts[models.TierPremium])
	}
}

func TestStore_MemoizesPerSeed(t *testing.T) {
	t.Chdir(t.TempDir())

	store := NewStore(DefaultStart, 30)

	first := store.Dataset(7)
	second := store.Dataset(7)

	if len(first) == 0 {
		t.Fatal("Dataset() returned no records")
	}
	// Same backing array: the dataset is produced once and shared.
	if &first[0] != &second[0] {
		t.Error("Dataset() should return the memoized slice, not a regeneration")
	}

	other := store.Dataset(8)
	if reflect.DeepEqual(first, other) {
		t.Error("different seeds should memoize different datasets")
	}

	seeds := store.Seeds()
	if len(seeds) != 2 {
		t.Errorf("Seeds() = %v, want two entries", seeds)
	}
}

func TestStore_ConcurrentFirstAccess(t *testing.T) {
	t.Chdir(t.TempDir())

	store := NewStore(DefaultStart, 30)

	results := make(chan []models.TransactionRecord, 10)
	for i := 0; i < 10; i++ {
		go func() {
			results <- store.Dataset(DefaultSeed)
		}()
	}

	first := <-results
	for i := 1; i < 10; i++ {
		got := <-results
		if &got[0] != &first[0] {
			t.Fatal("concurrent Dataset() calls should all see one generation")
		}
	}
}

func TestStore_DiskCacheRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	warm := NewStore(DefaultStart, 30)
	generated := warm.Dataset(DefaultSeed)

	// A fresh store in the same directory loads the gob cache and must see
	// the identical records.
	cold := NewStore(DefaultStart, 30)
	cached, err := cold.loadFromCache(DefaultSeed)
	if err != nil {
		t.Fatalf("loadFromCache() error = %v", err)
	}
	if len(cached) != len(generated) {
		t.Fatalf("cached %d records, want %d", len(cached), len(generated))
	}
	for i := range cached {
		if !cached[i].Date.Equal(generated[i].Date) {
			t.Fatalf("record %d: cached date %v, want %v", i, cached[i].Date, generated[i].Date)
		}
		cached[i].Date = generated[i].Date
	}
	if !reflect.DeepEqual(cached, generated) {
		t.Error("cached dataset differs from generated dataset")
	}
}

// The cache file is keyed by the full generation configuration, so stores
// with different spans or start dates sharing one directory never serve each
// other's datasets.
func TestStore_CacheScopedToConfiguration(t *testing.T) {
	t.Chdir(t.TempDir())

	short := NewStore(DefaultStart, 30)
	short.Dataset(DefaultSeed)

	long := NewStore(DefaultStart, 60)
	set := long.Dataset(DefaultSeed)
	if len(set) == 0 {
		t.Fatal("Dataset() returned no records")
	}
	wantEnd := DefaultStart.AddDate(0, 0, 59)
	if last := set[len(set)-1].Date; !last.Equal(wantEnd) {
		t.Errorf("60-day store dataset ends %v, want %v", last, wantEnd)
	}

	shifted := NewStore(DefaultStart.AddDate(0, 1, 0), 30)
	set = shifted.Dataset(DefaultSeed)
	if first := set[0].Date; !first.Equal(DefaultStart.AddDate(0, 1, 0)) {
		t.Errorf("shifted store dataset starts %v, want %v", first, DefaultStart.AddDate(0, 1, 0))
	}
}

func BenchmarkGenerate(b *testing.B) {
	for b.Loop() {
		_ = Generate(DefaultSeed, DefaultStart, DefaultDays)
	}
}
