package handlers

import (
	"net/url"
	"strings"
	"time"

	"ecom-dashboard/internal/errors"
	"ecom-dashboard/internal/models"
	"ecom-dashboard/internal/services"
)

const dateLayout = "2006-01-02"

// parseQuery builds a recomputation query from URL parameters. An absent
// category parameter selects every value; a parameter that is present but
// empty is an explicitly emptied selection and matches nothing. Out-of-domain
// measure/grain/group values are rejected, never defaulted.
func parseQuery(analytics *services.Analytics, values url.Values) (services.Query, error) {
	q := analytics.DefaultQuery()

	if v := values.Get("start"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return services.Query{}, errors.ValidationWrap(err, "start must be YYYY-MM-DD")
		}
		q.Start = d.UTC()
	}
	if v := values.Get("end"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return services.Query{}, errors.ValidationWrap(err, "end must be YYYY-MM-DD")
		}
		q.End = d.UTC()
	}
	if q.End.Before(q.Start) {
		return services.Query{}, errors.Validation("end date is before start date")
	}

	if values.Has("regions") {
		q.Regions = splitList(values.Get("regions"))
	}
	if values.Has("channels") {
		q.Channels = splitList(values.Get("channels"))
	}
	if values.Has("products") {
		q.Products = splitList(values.Get("products"))
	}

	if v := values.Get("measure"); v != "" {
		m, err := models.ParseMeasure(v)
		if err != nil {
			return services.Query{}, errors.ValidationWrap(err, "invalid measure")
		}
		q.Measure = m
	}
	if v := values.Get("grain"); v != "" {
		g, err := models.ParseGrain(v)
		if err != nil {
			return services.Query{}, errors.ValidationWrap(err, "invalid time grain")
		}
		q.Grain = g
	}
	if v := values.Get("group"); v != "" {
		d, err := models.ParseDimension(v)
		if err != nil {
			return services.Query{}, errors.ValidationWrap(err, "invalid group-by dimension")
		}
		q.GroupBy = d
	}

	return q, nil
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
