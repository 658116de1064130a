package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"ecom-dashboard/internal/charts"
	"ecom-dashboard/internal/services"
	"github.com/starfederation/datastar-go/datastar"
)

var fragmentFuncs = template.FuncMap{
	"comma":  formatComma,
	"rupiah": formatRupiah,
	"aov":    formatAOV,
}

var kpiTemplate = template.Must(template.New("kpiCards").Funcs(fragmentFuncs).Parse(`
<div id="kpi-cards" class="kpi-grid">
<div class="kpi-card"><span class="kpi-label">Rows (transactions)</span><strong>{{comma .Records}}</strong></div>
<div class="kpi-card"><span class="kpi-label">Total orders</span><strong>{{comma .TotalOrders}}</strong></div>
<div class="kpi-card"><span class="kpi-label">Total revenue</span><strong>{{rupiah .TotalRevenue}}</strong></div>
<div class="kpi-card"><span class="kpi-label">AOV</span><strong>{{aov .AOV}}</strong></div>
</div>`))

var detailsTemplate = template.Must(template.New("detailsTable").Funcs(fragmentFuncs).Parse(`
<div id="details-content">
<table class="modern-table">
<thead><tr><th>Date</th><th>Region</th><th>Channel</th><th>Product</th><th>Orders</th><th>Revenue</th><th>AOV</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.Date.Format "2006-01-02"}}</td>
<td>{{.Region}}</td>
<td>{{.Channel}}</td>
<td><span class="category-badge">{{.Product}}</span></td>
<td>{{.Orders}}</td>
<td><strong>{{rupiah .Revenue}}</strong></td>
<td>{{aov .AOV}}</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

// DashboardSignals mirrors the page's datastar signal tree. Category slices
// stay nil when the signal is absent (select all) and empty when the user
// deselected everything.
type DashboardSignals struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Regions  []string `json:"regions"`
	Channels []string `json:"channels"`
	Products []string `json:"products"`
	Measure  string   `json:"measure"`
	Grain    string   `json:"grain"`
	GroupBy  string   `json:"group"`
}

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// HandleDashboard runs one full recomputation pass for the current control
// state and patches every consumer: KPI cards, details table and the chart
// spec signal vega-embed re-renders from.
func (h *SSEHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	var signals DashboardSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.logger.Error("read dashboard signals", "error", err)
		return
	}

	q, err := h.queryFromSignals(signals)
	if err != nil {
		h.logger.Warn("invalid dashboard signals", "error", err)
		return
	}

	snap, err := h.analytics.Run(q)
	if err != nil {
		h.logger.Error("dashboard recomputation", "error", err)
		return
	}

	kpiHTML, err := renderFragment(kpiTemplate, snap.Summary)
	if err != nil {
		h.logger.Error("render kpi cards", "error", err)
		return
	}
	tableHTML, err := renderFragment(detailsTemplate, snap.Details)
	if err != nil {
		h.logger.Error("render details table", "error", err)
		return
	}

	sse.PatchElements(kpiHTML)
	sse.PatchElements(tableHTML)

	spec := charts.BuildSpec(snap.Series, q.Measure, q.GroupBy)
	jsonData, err := json.Marshal(map[string]any{"chartSpec": spec})
	if err != nil {
		h.logger.Error("marshal chart spec", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) queryFromSignals(signals DashboardSignals) (services.Query, error) {
	values := make(map[string][]string)
	if signals.Start != "" {
		values["start"] = []string{signals.Start}
	}
	if signals.End != "" {
		values["end"] = []string{signals.End}
	}
	if signals.Regions != nil {
		values["regions"] = []string{strings.Join(signals.Regions, ",")}
	}
	if signals.Channels != nil {
		values["channels"] = []string{strings.Join(signals.Channels, ",")}
	}
	if signals.Products != nil {
		values["products"] = []string{strings.Join(signals.Products, ",")}
	}
	if signals.Measure != "" {
		values["measure"] = []string{signals.Measure}
	}
	if signals.Grain != "" {
		values["grain"] = []string{signals.Grain}
	}
	if signals.GroupBy != "" {
		values["group"] = []string{signals.GroupBy}
	}
	return parseQuery(h.analytics, values)
}

func renderFragment(tmpl *template.Template, data any) (string, error) {
	var buf strings.Builder
	err := tmpl.Execute(&buf, data)
	return buf.String(), err
}

// formatComma renders 1234567 as "1,234,567".
func formatComma(v int) string {
	s := strconv.Itoa(v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatRupiah renders amounts the Indonesian way: "Rp 1.234.567".
func formatRupiah(v int64) string {
	return "Rp " + strings.ReplaceAll(formatComma(int(v)), ",", ".")
}

func formatAOV(v float64) string {
	return formatRupiah(int64(math.Round(v)))
}
