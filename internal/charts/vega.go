// Package charts builds the declarative Vega-Lite document the dashboard's
// renderer consumes. The engine never draws anything; it only describes the
// two linked trend panels over one aggregated series.
package charts

import "ecom-dashboard/internal/models"

const (
	schemaURL   = "https://vega.github.io/schema/vega-lite/v5.json"
	panelHeight = 230
)

type Spec struct {
	Schema  string  `json:"$schema"`
	VConcat []Panel `json:"vconcat"`
}

type Panel struct {
	Title     string      `json:"title"`
	Data      InlineData  `json:"data"`
	Width     string      `json:"width"`
	Height    int         `json:"height"`
	Mark      Mark        `json:"mark"`
	Params    []Param     `json:"params,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
	Encoding  Encoding    `json:"encoding"`
}

type InlineData struct {
	Values []models.AggregatedPoint `json:"values"`
}

type Mark struct {
	Type  string `json:"type"`
	Point bool   `json:"point"`
}

type Param struct {
	Name   string   `json:"name"`
	Select Interval `json:"select"`
	Bind   string   `json:"bind,omitempty"`
}

type Interval struct {
	Type      string   `json:"type"`
	Encodings []string `json:"encodings"`
}

type Transform struct {
	Filter Predicate `json:"filter"`
}

type Predicate struct {
	Param string `json:"param"`
}

type Encoding struct {
	X       Field   `json:"x"`
	Y       Field   `json:"y"`
	Color   Field   `json:"color"`
	Tooltip []Field `json:"tooltip"`
}

type Field struct {
	Field  string `json:"field"`
	Type   string `json:"type"`
	Title  string `json:"title,omitempty"`
	Format string `json:"format,omitempty"`
}

// BuildSpec produces the vconcat document: an overview panel with pan/zoom
// and a drag-to-select brush, and a detail panel filtered to the brushed
// range. Both panels embed the identical series; the link is the brush
// selection alone, never a re-aggregation.
func BuildSpec(series []models.AggregatedPoint, measure models.Measure, groupBy models.Dimension) *Spec {
	if series == nil {
		series = []models.AggregatedPoint{}
	}

	data := InlineData{Values: series}
	mark := Mark{Type: "line", Point: true}
	encoding := buildEncoding(measure, groupBy)

	overview := Panel{
		Title:  "Overall Trend Over Time",
		Data:   data,
		Width:  "container",
		Height: panelHeight,
		Mark:   mark,
		Params: []Param{
			{
				Name:   "zoom",
				Select: Interval{Type: "interval", Encodings: []string{"x"}},
				Bind:   "scales",
			},
			{
				Name:   "brush",
				Select: Interval{Type: "interval", Encodings: []string{"x"}},
			},
		},
		Encoding: encoding,
	}

	detail := Panel{
		Title:     "Detailed View for Selected Period",
		Data:      data,
		Width:     "container",
		Height:    panelHeight,
		Mark:      mark,
		Transform: []Transform{{Filter: Predicate{Param: "brush"}}},
		Encoding:  encoding,
	}

	return &Spec{
		Schema:  schemaURL,
		VConcat: []Panel{overview, detail},
	}
}

func buildEncoding(measure models.Measure, groupBy models.Dimension) Encoding {
	yTitle := measure.Title()

	// Bucket keys are strings on the wire, so time stays ordinal; the series
	// arrives pre-sorted in calendar order.
	return Encoding{
		X:     Field{Field: "time", Type: "ordinal", Title: "Time"},
		Y:     Field{Field: "value", Type: "quantitative", Title: yTitle},
		Color: Field{Field: "group", Type: "nominal", Title: string(groupBy)},
		Tooltip: []Field{
			{Field: "time", Type: "nominal", Title: "Time"},
			{Field: "group", Type: "nominal", Title: "Group"},
			{Field: "value", Type: "quantitative", Title: yTitle, Format: ",.2f"},
			{Field: "orders", Type: "quantitative", Title: "Orders", Format: ",d"},
			{Field: "revenue", Type: "quantitative", Title: "Revenue", Format: ",d"},
		},
	}
}
