package models

import (
	"cmp"
	"fmt"
	"time"
)

// Grain is the time-bucket granularity of an aggregation.
type Grain string

const (
	GrainDay   Grain = "day"
	GrainWeek  Grain = "week"
	GrainMonth Grain = "month"
)

func ParseGrain(s string) (Grain, error) {
	switch Grain(s) {
	case GrainDay, GrainWeek, GrainMonth:
		return Grain(s), nil
	}
	return "", fmt.Errorf("unknown time grain %q", s)
}

// Bucket is an ordered time-bucket key. It carries numeric year/period fields
// and compares structurally, so week 9 sorts before week 10 without any
// string parsing. For GrainWeek, Year is the ISO week-year: a late-December
// date can bucket into week 1 of the next year and an early-January date into
// the last week of the previous year. That follows the ISO-8601 calendar and
// is intentional.
type Bucket struct {
	Grain Grain
	Year  int
	Month time.Month // day and month grains
	Week  int        // week grain
	Day   int        // day grain
}

// BucketOf maps a calendar date to its bucket key for the given grain.
func BucketOf(d time.Time, g Grain) (Bucket, error) {
	switch g {
	case GrainDay:
		return Bucket{Grain: g, Year: d.Year(), Month: d.Month(), Day: d.Day()}, nil
	case GrainWeek:
		year, week := d.ISOWeek()
		return Bucket{Grain: g, Year: year, Week: week}, nil
	case GrainMonth:
		return Bucket{Grain: g, Year: d.Year(), Month: d.Month()}, nil
	}
	return Bucket{}, fmt.Errorf("unknown time grain %q", g)
}

// Compare orders buckets chronologically within a grain.
func (b Bucket) Compare(o Bucket) int {
	if c := cmp.Compare(b.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(b.period(), o.period()); c != 0 {
		return c
	}
	return cmp.Compare(b.Day, o.Day)
}

func (b Bucket) period() int {
	if b.Grain == GrainWeek {
		return b.Week
	}
	return int(b.Month)
}

// String renders the wire form of the key: 2024-03-15, 2024-W09 or 2024-03.
func (b Bucket) String() string {
	switch b.Grain {
	case GrainWeek:
		return fmt.Sprintf("%04d-W%02d", b.Year, b.Week)
	case GrainMonth:
		return fmt.Sprintf("%04d-%02d", b.Year, int(b.Month))
	default:
		return fmt.Sprintf("%04d-%02d-%02d", b.Year, int(b.Month), b.Day)
	}
}
