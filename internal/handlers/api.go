package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ecom-dashboard/internal/charts"
	"ecom-dashboard/internal/errors"
	"ecom-dashboard/internal/observability"
	"ecom-dashboard/internal/services"
)

const cacheMaxAge = "public, max-age=60"

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *APIHandlers) HandleSeries(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(h.analytics, r.URL.Query())
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	data, err := h.analytics.Series(q)
	if err != nil {
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "aggregation failed"), observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, data, map[string]string{
		"Cache-Control": cacheMaxAge,
	})
}

func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(h.analytics, r.URL.Query())
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, h.analytics.Summary(q), map[string]string{
		"Cache-Control": cacheMaxAge,
	})
}

func (h *APIHandlers) HandleRecords(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(h.analytics, r.URL.Query())
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, h.analytics.Detail(q), map[string]string{
		"Cache-Control": cacheMaxAge,
	})
}

func (h *APIHandlers) HandleChartSpec(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(h.analytics, r.URL.Query())
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	series, err := h.analytics.Series(q)
	if err != nil {
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "aggregation failed"), observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccess(w, charts.BuildSpec(series, q.Measure, q.GroupBy))
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
