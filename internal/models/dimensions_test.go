package models

import "testing"

func TestValidateUplifts(t *testing.T) {
	if err := ValidateUplifts(); err != nil {
		t.Errorf("ValidateUplifts() error = %v, every variant needs a multiplier", err)
	}
}

func TestUpliftTablesCoverAllVariants(t *testing.T) {
	if len(RegionUplift) != len(AllRegions) {
		t.Errorf("RegionUplift has %d entries, want %d", len(RegionUplift), len(AllRegions))
	}
	if len(ChannelUplift) != len(AllChannels) {
		t.Errorf("ChannelUplift has %d entries, want %d", len(ChannelUplift), len(AllChannels))
	}
	for _, r := range AllRegions {
		if RegionUplift[r] <= 0 {
			t.Errorf("region %q uplift = %v, want positive", r, RegionUplift[r])
		}
	}
	for _, c := range AllChannels {
		if ChannelUplift[c] <= 0 {
			t.Errorf("channel %q uplift = %v, want positive", c, ChannelUplift[c])
		}
	}
}

func TestParseMeasure(t *testing.T) {
	for _, valid := range []string{"orders", "revenue", "aov"} {
		if _, err := ParseMeasure(valid); err != nil {
			t.Errorf("ParseMeasure(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "profit", "AOV", "Revenue"} {
		if _, err := ParseMeasure(invalid); err == nil {
			t.Errorf("ParseMeasure(%q) should error", invalid)
		}
	}
}

func TestParseDimension(t *testing.T) {
	for _, valid := range []string{"region", "channel", "product"} {
		if _, err := ParseDimension(valid); err != nil {
			t.Errorf("ParseDimension(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "tier", "Region"} {
		if _, err := ParseDimension(invalid); err == nil {
			t.Errorf("ParseDimension(%q) should error", invalid)
		}
	}
}

func TestDimension_ValueOf(t *testing.T) {
	r := TransactionRecord{
		Region:  RegionBali,
		Channel: ChannelAds,
		Product: TierPremium,
	}

	tests := []struct {
		dim  Dimension
		want string
	}{
		{DimensionRegion, "Bali"},
		{DimensionChannel, "Ads"},
		{DimensionProduct, "Premium"},
	}

	for _, tt := range tests {
		if got := tt.dim.ValueOf(r); got != tt.want {
			t.Errorf("%s.ValueOf() = %q, want %q", tt.dim, got, tt.want)
		}
	}
}

func TestMeasure_Title(t *testing.T) {
	tests := []struct {
		measure Measure
		want    string
	}{
		{MeasureOrders, "Orders (sum)"},
		{MeasureRevenue, "Revenue (sum)"},
		{MeasureAOV, "Average Order Value (weighted)"},
	}

	for _, tt := range tests {
		if got := tt.measure.Title(); got != tt.want {
			t.Errorf("%s.Title() = %q, want %q", tt.measure, got, tt.want)
		}
	}
}
