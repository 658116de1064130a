// Package templates holds the dashboard page. The page is a single templ
// component: controls bound to datastar signals, KPI cards, the two-panel
// chart mount and the details table. All interactive updates arrive over
// /sse/dashboard; the page itself is static.
package templates

import (
	"encoding/json"
	"fmt"
	"html/template"

	"ecom-dashboard/internal/models"
	"github.com/a-h/templ"
)

// PageData seeds the initial control state of the dashboard.
type PageData struct {
	Start    string
	End      string
	Regions  []models.Region
	Channels []models.Channel
	Products []models.ProductTier

	// SignalsAttr is the pre-marshaled data-signals attribute. Values are
	// our own enum constants and config dates, so embedding is safe.
	SignalsAttr template.HTMLAttr
}

var page = template.Must(template.New("dashboard").Parse(dashboardHTML))

// Dashboard returns the page component served by GET /.
func Dashboard(data PageData) templ.Component {
	data.SignalsAttr = signalsAttr(data)
	return templ.FromGoHTML(page, data)
}

func signalsAttr(data PageData) template.HTMLAttr {
	signals := map[string]any{
		"start":    data.Start,
		"end":      data.End,
		"regions":  data.Regions,
		"channels": data.Channels,
		"products": data.Products,
		"measure":  models.MeasureRevenue,
		"grain":    models.GrainWeek,
		"group":    models.DimensionRegion,
	}
	blob, err := json.Marshal(signals)
	if err != nil {
		// Only reachable if the signal map stops being marshalable.
		panic(fmt.Sprintf("templates: marshal dashboard signals: %v", err))
	}
	return template.HTMLAttr(fmt.Sprintf("data-signals='%s'", blob))
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>E-Commerce Transactions Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>
<script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 0; display: grid; grid-template-columns: 260px 1fr; gap: 1rem; }
aside { padding: 1rem; border-right: 1px solid #e5e7eb; }
aside label { display: block; margin: 0.75rem 0 0.25rem; font-weight: 600; font-size: 0.85rem; }
aside select, aside input { width: 100%; }
main { padding: 1rem; }
.kpi-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 0.75rem; margin: 1rem 0; }
.kpi-card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 0.75rem; }
.kpi-label { display: block; color: #6b7280; font-size: 0.8rem; }
.kpi-card strong { font-size: 1.25rem; }
.modern-table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
.modern-table th, .modern-table td { padding: 0.4rem 0.6rem; border-bottom: 1px solid #e5e7eb; text-align: left; }
.category-badge { background: #eef2ff; border-radius: 4px; padding: 0.1rem 0.4rem; }
#chart { width: 100%; }
</style>
</head>
<body {{.SignalsAttr}} data-on-load="@get('/sse/dashboard')">
<aside>
<h2>Filters</h2>
<label for="start">Date range</label>
<input id="start" type="date" data-bind-start data-on-change="@get('/sse/dashboard')">
<input id="end" type="date" data-bind-end data-on-change="@get('/sse/dashboard')">
<label for="regions">Region</label>
<select id="regions" multiple size="6" data-bind-regions data-on-change="@get('/sse/dashboard')">
{{range .Regions}}<option selected>{{.}}</option>
{{end}}</select>
<label for="channels">Channel</label>
<select id="channels" multiple size="4" data-bind-channels data-on-change="@get('/sse/dashboard')">
{{range .Channels}}<option selected>{{.}}</option>
{{end}}</select>
<label for="products">Product tier</label>
<select id="products" multiple size="3" data-bind-products data-on-change="@get('/sse/dashboard')">
{{range .Products}}<option selected>{{.}}</option>
{{end}}</select>
<label for="measure">Measure</label>
<select id="measure" data-bind-measure data-on-change="@get('/sse/dashboard')">
<option value="orders">orders</option>
<option value="revenue" selected>revenue</option>
<option value="aov">aov</option>
</select>
<label for="grain">Time grain</label>
<select id="grain" data-bind-grain data-on-change="@get('/sse/dashboard')">
<option value="day">day</option>
<option value="week" selected>week</option>
<option value="month">month</option>
</select>
<label for="group">Group by</label>
<select id="group" data-bind-group data-on-change="@get('/sse/dashboard')">
<option value="region" selected>region</option>
<option value="channel">channel</option>
<option value="product">product</option>
</select>
</aside>
<main>
<h1>Interactive Infographic: E-Commerce Transactions in Indonesia (2024)</h1>
<p>Transactional patterns across regions, sales channels and product tiers over time.
Narrow the window, compare grouped trends, and drill into the raw rows below.</p>
<div id="kpi-cards" class="kpi-grid"></div>
<div id="chart" data-effect="window.renderChart($chartSpec)"></div>
<h2>Details table (top 200 rows after filters)</h2>
<div id="details-content"></div>
<script>
window.renderChart = function (spec) {
  if (!spec || !spec.vconcat) return;
  vegaEmbed('#chart', spec, { actions: false });
};
</script>
</main>
</body>
</html>
`
