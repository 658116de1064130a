package dataset

import (
	"math"
	"math/rand"
	"time"

	"ecom-dashboard/internal/models"
)

const (
	// DefaultSeed is the dataset every fresh deployment serves.
	DefaultSeed = 42
	// DefaultDays covers one full calendar year.
	DefaultDays = 365
)

// DefaultStart is the first day of the generated year.
var DefaultStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type priceBand struct {
	lo, hi int64 // inclusive bounds, currency minor-unit-free
}

// Strictly increasing, non-overlapping bands per product tier.
var tierPrices = map[models.ProductTier]priceBand{
	models.TierBasic:    {30_000, 70_000},
	models.TierStandard: {70_000, 150_000},
	models.TierPremium:  {150_000, 350_000},
}

// Generate produces the synthetic transaction dataset for a seed. It is a
// pure function of its arguments: one PRNG seeded once, all randomness drawn
// in a fixed order, so the same seed always yields the same records.
func Generate(seed int64, start time.Time, days int) []models.TransactionRecord {
	rng := rand.New(rand.NewSource(seed))

	// ~21 transactions per day on average.
	records := make([]models.TransactionRecord, 0, days*21)

	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)

		// Smooth yearly seasonality in [1.0, 1.5].
		seasonal := 1.0 + 0.25*(1+math.Sin(2*math.Pi*float64(i)/365))

		weekend := 1.0
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend = 1.15
		}

		count := 12 + rng.Intn(19) // transactions per day, [12, 30]
		for t := 0; t < count; t++ {
			region := models.AllRegions[rng.Intn(len(models.AllRegions))]
			channel := models.AllChannels[rng.Intn(len(models.AllChannels))]
			tier := drawTier(rng)

			base := 1 + rng.Intn(3)
			band := tierPrices[tier]
			price := band.lo + rng.Int63n(band.hi-band.lo+1)

			orders := int(math.Round(float64(base) * seasonal * weekend *
				models.ChannelUplift[channel] * models.RegionUplift[region]))
			if orders < 1 {
				orders = 1
			}
			revenue := int64(orders) * price

			records = append(records, models.TransactionRecord{
				Date:    day,
				Region:  region,
				Channel: channel,
				Product: tier,
				Orders:  orders,
				Revenue: revenue,
				AOV:     float64(revenue) / float64(orders),
			})
		}
	}

	return records
}

// drawTier draws a product tier weighted Basic 55%, Standard 32%, Premium 13%.
func drawTier(rng *rand.Rand) models.ProductTier {
	switch v := rng.Float64(); {
	case v < 0.55:
		return models.TierBasic
	case v < 0.87:
		return models.TierStandard
	default:
		return models.TierPremium
	}
}
