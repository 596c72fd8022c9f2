// Package plot assembles SPC chart descriptions: a set of declarative
// traces plus a layout, compatible with the plotly scene-graph JSON, and
// writes them through the embedded HTML renderer.
package plot

// Line styling of a trace. Width is always encoded, the band traces
// rely on an explicit zero to stay invisible.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

// Marker styling of a trace, with one color per point.
type Marker struct {
	Color  []string `json:"color,omitempty"`
	Size   int      `json:"size,omitempty"`
	Symbol string   `json:"symbol,omitempty"`
}

// Trace is a single visual series: x/y data with point-level color and
// text overrides and line styling.
type Trace struct {
	X             []string  `json:"x"`
	Y             []float64 `json:"y"`
	Name          string    `json:"name,omitempty"`
	Mode          string    `json:"mode,omitempty"`
	Text          []string  `json:"text,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	Line          *Line     `json:"line,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	Fill          string    `json:"fill,omitempty"`
	FillColor     string    `json:"fillcolor,omitempty"`
}

// XAxis configuration, ranged over formatted dates.
type XAxis struct {
	Title string    `json:"title,omitempty"`
	Range [2]string `json:"range"`
}

// YAxis configuration.
type YAxis struct {
	Title      string     `json:"title,omitempty"`
	Range      [2]float64 `json:"range"`
	TickFormat string     `json:"tickformat,omitempty"`
}

// Font holds the base font settings of the layout.
type Font struct {
	Size int `json:"size,omitempty"`
}

// Layout describes the chart frame around the traces.
type Layout struct {
	Title      string `json:"title,omitempty"`
	Font       Font   `json:"font"`
	XAxis      XAxis  `json:"xaxis"`
	YAxis      YAxis  `json:"yaxis"`
	ShowLegend bool   `json:"showlegend"`
	HoverMode  string `json:"hovermode,omitempty"`
	Template   string `json:"template,omitempty"`
}

// Figure is a complete chart description. It is built fresh on every
// call, holds no state and is not mutated after construction.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}
