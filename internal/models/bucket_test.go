package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketOf_Keys(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		grain Grain
		want  string
	}{
		{"day", date(2024, time.March, 5), GrainDay, "2024-03-05"},
		{"month", date(2024, time.March, 5), GrainMonth, "2024-03"},
		{"week", date(2024, time.March, 5), GrainWeek, "2024-W10"},
		{"week zero padded", date(2024, time.February, 26), GrainWeek, "2024-W09"},
		{"first iso week", date(2024, time.January, 1), GrainWeek, "2024-W01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := BucketOf(tt.date, tt.grain)
			if err != nil {
				t.Fatalf("BucketOf() error = %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("BucketOf(%v, %v) = %q, want %q", tt.date, tt.grain, got, tt.want)
			}
		})
	}
}

// ISO week numbering can push a date into a week of the adjacent year. This
// follows the ISO-8601 calendar and must stay that way.
func TestBucketOf_ISOWeekYearBoundary(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date(2024, time.December, 30), "2025-W01"},
		{date(2024, time.December, 31), "2025-W01"},
		{date(2021, time.January, 1), "2020-W53"},
		{date(2021, time.January, 3), "2020-W53"},
		{date(2021, time.January, 4), "2021-W01"},
	}

	for _, tt := range tests {
		b, err := BucketOf(tt.date, GrainWeek)
		if err != nil {
			t.Fatalf("BucketOf() error = %v", err)
		}
		if got := b.String(); got != tt.want {
			t.Errorf("BucketOf(%v, week) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestBucketOf_UnknownGrain(t *testing.T) {
	if _, err := BucketOf(date(2024, time.March, 5), Grain("quarter")); err == nil {
		t.Error("BucketOf() with unknown grain should error")
	}
}

func TestBucket_Compare(t *testing.T) {
	mustBucket := func(d time.Time, g Grain) Bucket {
		t.Helper()
		b, err := BucketOf(d, g)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}

	tests := []struct {
		name   string
		before time.Time
		after  time.Time
		grain  Grain
	}{
		// Week 9 must sort before week 10: numeric comparison, not string.
		{"week 9 before week 10", date(2024, time.February, 26), date(2024, time.March, 4), GrainWeek},
		{"week year boundary", date(2024, time.December, 23), date(2024, time.December, 30), GrainWeek},
		{"month across years", date(2024, time.December, 1), date(2025, time.January, 1), GrainMonth},
		{"day within month", date(2024, time.March, 5), date(2024, time.March, 6), GrainDay},
		{"day across months", date(2024, time.February, 29), date(2024, time.March, 1), GrainDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustBucket(tt.before, tt.grain)
			b := mustBucket(tt.after, tt.grain)

			if a.Compare(b) >= 0 {
				t.Errorf("Compare(%v, %v) = %d, want < 0", a, b, a.Compare(b))
			}
			if b.Compare(a) <= 0 {
				t.Errorf("Compare(%v, %v) = %d, want > 0", b, a, b.Compare(a))
			}
			if a.Compare(a) != 0 {
				t.Errorf("Compare(%v, %v) = %d, want 0", a, a, a.Compare(a))
			}
		})
	}
}

func TestParseGrain(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		if _, err := ParseGrain(valid); err != nil {
			t.Errorf("ParseGrain(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "quarter", "Day", "hour"} {
		if _, err := ParseGrain(invalid); err == nil {
			t.Errorf("ParseGrain(%q) should error", invalid)
		}
	}
}
