package models

import "fmt"

type Region string

const (
	RegionJakarta     Region = "Jakarta"
	RegionWestJava    Region = "West Java"
	RegionCentralJava Region = "Central Java"
	RegionEastJava    Region = "East Java"
	RegionBali        Region = "Bali"
	RegionSumatra     Region = "Sumatra"
)

var AllRegions = []Region{
	RegionJakarta,
	RegionWestJava,
	RegionCentralJava,
	RegionEastJava,
	RegionBali,
	RegionSumatra,
}

type Channel string

const (
	ChannelOrganic   Channel = "Organic"
	ChannelAds       Channel = "Ads"
	ChannelAffiliate Channel = "Affiliate"
	ChannelReferral  Channel = "Referral"
)

var AllChannels = []Channel{
	ChannelOrganic,
	ChannelAds,
	ChannelAffiliate,
	ChannelReferral,
}

type ProductTier string

const (
	TierBasic    ProductTier = "Basic"
	TierStandard ProductTier = "Standard"
	TierPremium  ProductTier = "Premium"
)

var AllProductTiers = []ProductTier{
	TierBasic,
	TierStandard,
	TierPremium,
}

// Order-volume uplift per sales channel.
var ChannelUplift = map[Channel]float64{
	ChannelOrganic:   1.00,
	ChannelAds:       1.25,
	ChannelAffiliate: 1.10,
	ChannelReferral:  1.05,
}

// Order-volume uplift per region.
var RegionUplift = map[Region]float64{
	RegionJakarta:     1.15,
	RegionWestJava:    1.05,
	RegionCentralJava: 0.95,
	RegionEastJava:    1.00,
	RegionBali:        0.90,
	RegionSumatra:     0.92,
}

// ValidateUplifts confirms every region and channel variant has a multiplier.
// Called once at startup so a newly added category without an uplift entry is
// a fatal configuration error, not a silent 0x multiplier.
func ValidateUplifts() error {
	for _, r := range AllRegions {
		if _, ok := RegionUplift[r]; !ok {
			return fmt.Errorf("region %q has no uplift multiplier", r)
		}
	}
	for _, c := range AllChannels {
		if _, ok := ChannelUplift[c]; !ok {
			return fmt.Errorf("channel %q has no uplift multiplier", c)
		}
	}
	return nil
}

// Dimension selects which categorical field a series is grouped by.
type Dimension string

const (
	DimensionRegion  Dimension = "region"
	DimensionChannel Dimension = "channel"
	DimensionProduct Dimension = "product"
)

func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionRegion, DimensionChannel, DimensionProduct:
		return Dimension(s), nil
	}
	return "", fmt.Errorf("unknown group-by dimension %q", s)
}

// ValueOf extracts this dimension's value from a record.
func (d Dimension) ValueOf(r TransactionRecord) string {
	switch d {
	case DimensionChannel:
		return string(r.Channel)
	case DimensionProduct:
		return string(r.Product)
	default:
		return string(r.Region)
	}
}

// Measure selects what an aggregated point's value represents.
type Measure string

const (
	MeasureOrders  Measure = "orders"
	MeasureRevenue Measure = "revenue"
	MeasureAOV     Measure = "aov"
)

func ParseMeasure(s string) (Measure, error) {
	switch Measure(s) {
	case MeasureOrders, MeasureRevenue, MeasureAOV:
		return Measure(s), nil
	}
	return "", fmt.Errorf("unknown measure %q", s)
}

// Title returns the y-axis label for a measure.
func (m Measure) Title() string {
	switch m {
	case MeasureOrders:
		return "Orders (sum)"
	case MeasureAOV:
		return "Average Order Value (weighted)"
	default:
		return "Revenue (sum)"
	}
}
