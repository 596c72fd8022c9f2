package plot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"

	"github.com/plotthedots/spcchart/model"
	"github.com/plotthedots/spcchart/tools/log"
)

//go:embed assets/chart.js
var chartScript string

//go:embed assets/chart.html
var chartPage string

var ErrEmptyDataframe = errors.New("plot: dataframe has no rows")

const (
	defaultTitle    = "SPC Chart"
	defaultXPadding = "5d"
	defaultFormat   = ".0f"

	bandColor = "rgba(174, 37, 115, 0.1)"
	meanColor = "rgba(174, 37, 115, 0.5)"
)

// Chart builds SPC figures from dataframes. A single Chart is reusable
// across datasets, every call produces an independent figure.
type Chart struct {
	title         string
	xLabel        string
	yLabel        string
	xPadding      time.Duration
	config        DisplayConfig
	scriptContent string

	rawXPadding string
}

// Option customizes the chart.
type Option func(*Chart)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(chart *Chart) {
		chart.title = title
	}
}

// WithAxisLabels sets the x and y axis labels.
func WithAxisLabels(xLabel, yLabel string) Option {
	return func(chart *Chart) {
		chart.xLabel = xLabel
		chart.yLabel = yLabel
	}
}

// WithXAxisPadding sets how far the x axis extends past the observed
// date span on each side, as a duration string (eg: "5d", "12h").
func WithXAxisPadding(padding string) Option {
	return func(chart *Chart) {
		chart.rawXPadding = padding
	}
}

// WithDisplayOverride merges the given overrides on top of the default
// display configuration.
func WithDisplayOverride(override DisplayOverride) Option {
	return func(chart *Chart) {
		chart.config = chart.config.Merge(override)
	}
}

// NewChart creates a chart builder. The embedded render script is
// minified here, once, so figures can be written repeatedly.
func NewChart(options ...Option) (*Chart, error) {
	chart := &Chart{
		title:       defaultTitle,
		rawXPadding: defaultXPadding,
		config:      DefaultDisplayConfig(),
	}

	for _, option := range options {
		option(chart)
	}

	padding, err := str2duration.ParseDuration(chart.rawXPadding)
	if err != nil {
		return nil, fmt.Errorf("plot: invalid x-axis padding %q: %w", chart.rawXPadding, err)
	}
	chart.xPadding = padding

	result := api.Transform(chartScript, api.TransformOptions{
		MinifyWhitespace: true,
		MinifySyntax:     true,
	})
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("plot: minify render script: %s", result.Errors[0].Text)
	}
	chart.scriptContent = string(result.Code)

	return chart, nil
}

// Figure assembles the SPC chart description: the observed series with
// per-point color and status, the mean line, the control band and the
// axis configuration.
func (c Chart) Figure(df *model.Dataframe) (*Figure, error) {
	if err := df.Validate(); err != nil {
		return nil, err
	}

	if df.Len() == 0 {
		return nil, ErrEmptyDataframe
	}

	hoverFormat := df.Format
	if hoverFormat == "" {
		hoverFormat = defaultFormat
	}

	rows := lo.Times(df.Len(), df.Row)
	dates := lo.Map(df.Time, func(date time.Time, _ int) string {
		return date.Format(DateLayout)
	})

	observed := Trace{
		X:    dates,
		Y:    df.Value.Values(),
		Name: "Performance",
		Mode: "lines+markers",
		Marker: &Marker{
			Color: lo.Map(rows, func(point model.Point, _ int) string {
				return point.Color()
			}),
			Size:   10,
			Symbol: "circle",
		},
		Line: &Line{Color: model.ColorBase, Width: 3, Dash: "solid"},
		Text: lo.Map(rows, func(point model.Point, _ int) string {
			return point.Status()
		}),
		HoverTemplate: fmt.Sprintf("%%{text}: %%{y:%s}<extra></extra>", hoverFormat),
	}

	meanLine := Trace{
		X:             dates,
		Y:             df.Mean.Values(),
		Name:          "Mean",
		Mode:          "lines",
		Line:          &Line{Color: meanColor, Width: 2, Dash: "dash"},
		HoverTemplate: fmt.Sprintf("mean: %%{y:%s}<extra></extra>", hoverFormat),
	}

	lowerLimit := Trace{
		X:             dates,
		Y:             df.LowerLimit.Values(),
		Name:          "lpl",
		Mode:          "lines",
		Line:          &Line{Color: bandColor, Width: 0},
		HoverTemplate: fmt.Sprintf("lpl: %%{y:%s}<extra></extra>", hoverFormat),
	}

	// fills back to the lower-limit trace, shading the control band
	upperLimit := Trace{
		X:             dates,
		Y:             df.UpperLimit.Values(),
		Name:          "upl",
		Mode:          "lines",
		Line:          &Line{Color: bandColor, Width: 0},
		Fill:          "tonexty",
		FillColor:     bandColor,
		HoverTemplate: fmt.Sprintf("upl: %%{y:%s}<extra></extra>", hoverFormat),
	}

	before := func(a, b time.Time) bool { return a.Before(b) }
	minDate := lo.MinBy(df.Time, before)
	maxDate := lo.MaxBy(df.Time, func(a, b time.Time) bool { return b.Before(a) })
	minValue, maxValue := model.Bounds(df.Value)

	layout := Layout{
		Title: c.title,
		Font:  Font{Size: 12},
		XAxis: XAxis{
			Title: c.xLabel,
			Range: XAxisRange(minDate, maxDate, c.xPadding),
		},
		YAxis:      yAxis(c.yLabel, minValue, maxValue, df.Format),
		ShowLegend: false,
		HoverMode:  "x unified",
	}

	return &Figure{
		Data:   []Trace{observed, meanLine, lowerLimit, upperLimit},
		Layout: layout,
	}, nil
}

// WriteHTML assembles the figure and writes a self-contained page that
// hands it, together with the display config, to the rendering backend.
func (c Chart) WriteHTML(df *model.Dataframe, writer io.Writer) error {
	figure, err := c.Figure(df)
	if err != nil {
		return err
	}
	figure.Layout.Template = "plotly_white"

	figureJSON, err := json.Marshal(figure)
	if err != nil {
		return err
	}

	configJSON, err := json.Marshal(c.config)
	if err != nil {
		return err
	}

	page, err := template.New("chart").Parse(chartPage)
	if err != nil {
		return err
	}

	return page.Execute(writer, struct {
		Title  string
		Figure template.JS
		Config template.JS
		Script template.JS
	}{
		Title:  c.title,
		Figure: template.JS(figureJSON),
		Config: template.JS(configJSON),
		Script: template.JS(c.scriptContent),
	})
}

// SaveHTML writes the chart page to a file.
func (c Chart) SaveHTML(df *model.Dataframe, outputFile string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer file.Close()

	log.Infof("saving SPC chart to %s", outputFile)
	return c.WriteHTML(df, file)
}

// Summary displays the per-status point counts and a histogram of the
// observed values in stdout
func (c Chart) Summary(df *model.Dataframe) {
	fmt.Println(c.summaryTable(df))

	hist := histogram.Hist(15, df.Value.Values())
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(10)); err != nil {
		log.Warnf("print histogram fail: %v", err)
	}
	fmt.Println()
}

func (c Chart) summaryTable(df *model.Dataframe) string {
	statuses := lo.Times(df.Len(), func(i int) string {
		return df.Row(i).Status()
	})
	counts := lo.CountValues(statuses)

	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Status", "Points", "%"})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	labels := []string{
		model.StatusOutsideLimit,
		model.StatusCloseToLimit,
		model.StatusAboveMean,
		model.StatusBelowMean,
		model.StatusNeutral,
	}

	for _, label := range labels {
		display := label
		if display == model.StatusNeutral {
			display = "On mean"
		}
		table.Append([]string{
			display,
			strconv.Itoa(counts[label]),
			fmt.Sprintf("%.1f %%", float64(counts[label])/float64(df.Len())*100),
		})
	}

	table.SetFooter([]string{"TOTAL", strconv.Itoa(df.Len()), "100.0 %"})
	table.Render()

	return buffer.String()
}
